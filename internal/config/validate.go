package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateTranscript(); err != nil {
		return err
	}
	return c.validateYouTube()
}

func (c *Config) validateServer() error {
	if strings.TrimSpace(c.Server.Bind) == "" {
		return errors.New("server.bind must be set")
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		return errors.New("server.cors_allowed_origins must include at least one origin")
	}
	return nil
}

func (c *Config) validateTranscript() error {
	if c.Transcript.DefaultLanguage == "" {
		return errors.New("transcript.default_language must be set")
	}
	if c.Transcript.DefaultMaxLength <= 0 {
		return errors.New("transcript.default_max_length must be positive")
	}
	if c.Transcript.MaxLengthCap > 0 && c.Transcript.DefaultMaxLength > c.Transcript.MaxLengthCap {
		return errors.New("transcript.default_max_length must not exceed transcript.max_length_cap")
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if c.YouTube.ProxyURL != "" {
		if _, err := url.Parse(c.YouTube.ProxyURL); err != nil {
			return fmt.Errorf("youtube.proxy_url is not a valid URL: %w", err)
		}
	}
	if c.YouTube.InnertubeBaseURL != "" {
		parsed, err := url.Parse(c.YouTube.InnertubeBaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return errors.New("youtube.innertube_base_url must be an absolute URL")
		}
	}
	return nil
}
