package config

const (
	defaultAPIBind          = "127.0.0.1:8001"
	defaultRequestTimeout   = 60
	defaultLanguage         = "en"
	defaultMaxLength        = 50000
	defaultTruncationMarker = "..."
	defaultLogDir           = "~/.local/share/scribe/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

func defaultCORSOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:               defaultAPIBind,
			CORSAllowedOrigins: defaultCORSOrigins(),
			RequestTimeout:     defaultRequestTimeout,
		},
		Transcript: Transcript{
			DefaultLanguage:  defaultLanguage,
			DefaultMaxLength: defaultMaxLength,
			TruncationMarker: defaultTruncationMarker,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			LogDir: defaultLogDir,
		},
	}
}
