package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeServer()
	c.normalizeTranscript()
	c.normalizeYouTube()
	return c.normalizeLogging()
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultAPIBind
	}
	c.Server.APIToken = strings.TrimSpace(c.Server.APIToken)
	if c.Server.RequestTimeout < 0 {
		c.Server.RequestTimeout = 0
	}

	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = defaultCORSOrigins()
		return
	}
	origins := make([]string, 0, len(c.Server.CORSAllowedOrigins))
	seen := make(map[string]struct{}, len(c.Server.CORSAllowedOrigins))
	for _, origin := range c.Server.CORSAllowedOrigins {
		normalized := strings.TrimRight(strings.TrimSpace(origin), "/")
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		origins = append(origins, normalized)
	}
	if len(origins) == 0 {
		origins = defaultCORSOrigins()
	}
	c.Server.CORSAllowedOrigins = origins
}

func (c *Config) normalizeTranscript() {
	c.Transcript.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Transcript.DefaultLanguage))
	if c.Transcript.DefaultLanguage == "" {
		c.Transcript.DefaultLanguage = defaultLanguage
	}
	if c.Transcript.DefaultMaxLength <= 0 {
		c.Transcript.DefaultMaxLength = defaultMaxLength
	}
	if c.Transcript.MaxLengthCap < 0 {
		c.Transcript.MaxLengthCap = 0
	}
	if c.Transcript.TruncationMarker == "" {
		c.Transcript.TruncationMarker = defaultTruncationMarker
	}
}

func (c *Config) normalizeYouTube() {
	c.YouTube.ProxyURL = strings.TrimSpace(c.YouTube.ProxyURL)
	if c.YouTube.ProxyURL == "" {
		for _, key := range []string{"YTA_HTTPS_PROXY", "HTTPS_PROXY", "YTA_HTTP_PROXY", "HTTP_PROXY"} {
			if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
				c.YouTube.ProxyURL = strings.TrimSpace(value)
				break
			}
		}
	}
	c.YouTube.InnertubeBaseURL = strings.TrimRight(strings.TrimSpace(c.YouTube.InnertubeBaseURL), "/")
	c.YouTube.DataAPIKey = strings.TrimSpace(c.YouTube.DataAPIKey)
	if c.YouTube.DataAPIKey == "" {
		if value, ok := os.LookupEnv("YOUTUBE_API_KEY"); ok {
			c.YouTube.DataAPIKey = strings.TrimSpace(value)
		}
	}
	c.YouTube.YtDlpBinary = strings.TrimSpace(c.YouTube.YtDlpBinary)
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.LogDir) == "" {
		c.Logging.LogDir = defaultLogDir
	}
	var err error
	if c.Logging.LogDir, err = expandPath(c.Logging.LogDir); err != nil {
		return fmt.Errorf("logging.log_dir: %w", err)
	}
	return nil
}
