package api

// TranscriptRequest is the POST /transcript request body. MaxLength and
// Language fall back to server defaults when omitted.
type TranscriptRequest struct {
	URL       string `json:"url"`
	MaxLength int    `json:"max_length,omitempty"`
	Language  string `json:"language,omitempty"`
}

// TranscriptResponse is the POST /transcript response envelope. Success
// false carries Error; success true carries Transcript plus whatever
// metadata could be resolved.
type TranscriptResponse struct {
	Success          bool   `json:"success"`
	Transcript       string `json:"transcript,omitempty"`
	Error            string `json:"error,omitempty"`
	VideoID          string `json:"video_id,omitempty"`
	DetectedLanguage string `json:"detected_language,omitempty"`
	Title            string `json:"title,omitempty"`
	// Duration is the video length in whole seconds.
	Duration int64 `json:"duration,omitempty"`
}

// ServiceInfo is the GET / payload.
type ServiceInfo struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthStatus is the GET /health payload.
type HealthStatus struct {
	Status string `json:"status"`
}

// DependencyStatus captures availability of an optional external binary.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// Capabilities names the integrations the daemon was constructed with.
type Capabilities struct {
	CaptionsProvider  string   `json:"captions_provider"`
	MetadataProviders []string `json:"metadata_providers"`
	ProxyConfigured   bool     `json:"proxy_configured"`
	AuthEnabled       bool     `json:"auth_enabled"`
}

// DaemonStatus aggregates daemon runtime information for API consumers.
type DaemonStatus struct {
	Running      bool               `json:"running"`
	PID          int                `json:"pid"`
	Bind         string             `json:"bind"`
	LockFilePath string             `json:"lock_file_path"`
	Capabilities Capabilities       `json:"capabilities"`
	Dependencies []DependencyStatus `json:"dependencies,omitempty"`
}
