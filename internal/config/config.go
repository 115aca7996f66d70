package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the HTTP API surface configuration.
type Server struct {
	Bind               string   `toml:"bind"`
	APIToken           string   `toml:"api_token"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	// RequestTimeout bounds a single transcript request in seconds.
	// Zero disables the bound.
	RequestTimeout int `toml:"request_timeout"`
}

// Transcript contains defaults applied to transcript requests.
type Transcript struct {
	DefaultLanguage  string `toml:"default_language"`
	DefaultMaxLength int    `toml:"default_max_length"`
	// MaxLengthCap clamps client-supplied max_length values. Zero
	// leaves them uncapped.
	MaxLengthCap     int    `toml:"max_length_cap"`
	TruncationMarker string `toml:"truncation_marker"`
}

// YouTube contains upstream provider configuration.
type YouTube struct {
	ProxyURL         string `toml:"proxy_url"`
	InnertubeBaseURL string `toml:"innertube_base_url"`
	DataAPIKey       string `toml:"data_api_key"`
	YtDlpEnabled     bool   `toml:"ytdlp_enabled"`
	YtDlpBinary      string `toml:"ytdlp_binary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	LogDir string `toml:"log_dir"`
}

// Config encapsulates all configuration values for Scribe.
//
// Configuration sections by subsystem:
//   - Server: bind address, optional API token, CORS origins, timeout
//   - Transcript: request defaults and truncation behavior
//   - YouTube: proxy, Innertube override, Data API key, yt-dlp fallback
//   - Logging: log format, level, and directory
type Config struct {
	Server     Server     `toml:"server"`
	Transcript Transcript `toml:"transcript"`
	YouTube    YouTube    `toml:"youtube"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/scribe/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("scribe.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for daemon operation.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Logging.LogDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Logging.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Logging.LogDir, err)
	}
	return nil
}

// YtDlpBinary returns the yt-dlp executable to probe and run.
func (c *Config) YtDlpBinary() string {
	if bin := strings.TrimSpace(c.YouTube.YtDlpBinary); bin != "" {
		return bin
	}
	return "yt-dlp"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
