package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"log/slog"

	"scribe/internal/api"
	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/transcript"
	"scribe/internal/videoid"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
	handler  http.Handler
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		cfg:    cfg,
		logger: logger,
		daemon: d,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleRoot)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/transcript", authMiddleware(cfg.Server.APIToken, srv.handleTranscript))
	mux.HandleFunc("/status", authMiddleware(cfg.Server.APIToken, srv.handleStatus))

	srv.handler = corsMiddleware(cfg.Server.CORSAllowedOrigins,
		srv.requestIDMiddleware(mux))

	srv.server = &http.Server{
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Write timeout must outlast the longest transcript fetch.
		WriteTimeout: srv.requestTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return srv
}

func (s *apiServer) requestTimeout() time.Duration {
	if s.cfg.Server.RequestTimeout <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(s.cfg.Server.RequestTimeout) * time.Second
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", slog.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.ServiceInfo{
		Message: "YouTube Transcript API",
		Status:  "running",
	})
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, api.HealthStatus{Status: "healthy"})
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status(r.Context())
	deps := make([]api.DependencyStatus, len(status.Dependencies))
	for i, dep := range status.Dependencies {
		deps[i] = api.DependencyStatus{
			Name:        dep.Name,
			Command:     dep.Command,
			Description: dep.Description,
			Optional:    dep.Optional,
			Available:   dep.Available,
			Detail:      dep.Detail,
		}
	}
	s.writeJSON(w, http.StatusOK, api.DaemonStatus{
		Running:      status.Running,
		PID:          status.PID,
		Bind:         status.Bind,
		LockFilePath: status.LockFilePath,
		Capabilities: api.Capabilities{
			CaptionsProvider:  status.Capabilities.CaptionsProvider,
			MetadataProviders: status.Capabilities.MetadataProviders,
			ProxyConfigured:   status.Capabilities.ProxyConfigured,
			AuthEnabled:       status.Capabilities.AuthEnabled,
		},
		Dependencies: deps,
	})
}

// handleTranscript implements the transcript endpoint. Failures are carried
// inside an HTTP 200 envelope so existing front-end clients keep working.
func (s *apiServer) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	logger := s.log()
	if requestID, ok := services.RequestIDFromContext(r.Context()); ok {
		logger = logger.With(logging.String("request_id", requestID))
	}

	var req api.TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusOK, api.TranscriptResponse{
			Success: false,
			Error:   "Invalid request body. Expected JSON with a url field.",
		})
		return
	}

	id, err := videoid.Parse(req.URL)
	if err != nil {
		wrapped := services.Wrap(services.ErrInvalidInput, "api", "resolve url", req.URL, err)
		logger.Info("rejected transcript request", logging.Error(wrapped))
		s.writeJSON(w, http.StatusOK, api.TranscriptResponse{
			Success: false,
			Error:   services.UserMessage(wrapped),
		})
		return
	}

	language := req.Language
	if language == "" {
		language = s.cfg.Transcript.DefaultLanguage
	}
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = s.cfg.Transcript.DefaultMaxLength
	}
	if limit := s.cfg.Transcript.MaxLengthCap; limit > 0 && maxLength > limit {
		maxLength = limit
	}

	ctx := services.WithVideoID(r.Context(), string(id))
	if s.cfg.Server.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout())
		defer cancel()
	}

	logger.Info("processing transcript request",
		logging.String("video_id", string(id)),
		logging.String("language", language),
		logging.Int("max_length", maxLength))

	result, err := s.daemon.service.Fetch(ctx, transcript.Request{
		VideoID:   id,
		Language:  language,
		MaxLength: maxLength,
	})
	if err != nil {
		logger.Warn("transcript fetch failed",
			logging.String("video_id", string(id)),
			logging.Error(err))
		s.writeJSON(w, http.StatusOK, api.TranscriptResponse{
			Success: false,
			Error:   services.UserMessage(err),
			VideoID: string(id),
		})
		return
	}

	info := s.daemon.metadata.Lookup(ctx, id)

	logger.Info("transcript request served",
		logging.String("video_id", string(id)),
		logging.Int("characters", len(result.Text)),
		logging.Bool("truncated", result.Truncated))

	s.writeJSON(w, http.StatusOK, api.TranscriptResponse{
		Success:          true,
		Transcript:       result.Text,
		VideoID:          string(id),
		DetectedLanguage: result.DetectedLanguage,
		Title:            info.Title,
		Duration:         int64(info.Duration.Seconds()),
	})
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String("component", "api-server"))
	}
	return logging.NewNop()
}
