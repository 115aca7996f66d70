package transcript

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"scribe/internal/captions"
	"scribe/internal/language"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/textutil"
	"scribe/internal/videoid"
)

// Defaults applied when a request leaves the field unset.
const (
	DefaultMaxLength = 50000
	DefaultLanguage  = "en"

	truncationMarker = "..."
)

// Provider is the caption source the retriever runs against. Satisfied by
// *captions.Client.
type Provider interface {
	List(ctx context.Context, videoID string) (captions.TrackList, error)
	Download(ctx context.Context, track captions.Track) ([]captions.Segment, error)
}

// Request describes one transcript retrieval.
type Request struct {
	VideoID   videoid.ID
	Language  string
	MaxLength int
}

// Result is a successful retrieval.
type Result struct {
	Text             string
	DetectedLanguage string
	Truncated        bool
}

// Service executes the retrieval strategy chain.
type Service struct {
	provider Provider
	logger   *slog.Logger
	marker   string
}

// NewService constructs a retriever over the given caption provider.
func NewService(provider Provider, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	svc := &Service{
		provider: provider,
		logger:   logger.With(logging.String("component", "transcript")),
		marker:   truncationMarker,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTruncationMarker overrides the marker appended to truncated text.
func WithTruncationMarker(marker string) ServiceOption {
	return func(s *Service) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// Fetch runs the strategy chain and post-processes the winning track's text.
func (s *Service) Fetch(ctx context.Context, req Request) (*Result, error) {
	if s == nil || s.provider == nil {
		return nil, services.Wrap(services.ErrConfiguration, "transcript", "fetch", "caption provider not configured", nil)
	}

	lang := language.Normalize(req.Language)
	if lang == "" {
		lang = DefaultLanguage
	}
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	var failures []string
	sawProviderError := false
	sawUnavailable := false
	for _, strat := range s.strategies() {
		outcome, err := strat.run(ctx, req.VideoID.String(), lang)
		if err == nil {
			s.logger.Debug("strategy succeeded",
				logging.String("strategy", strat.name),
				logging.String("video_id", req.VideoID.String()),
				logging.String("detected_language", outcome.language))
			return s.finish(outcome, maxLength), nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if errors.Is(err, captions.ErrVideoUnavailable) {
			sawUnavailable = true
		} else if !errors.Is(err, captions.ErrNoCaptionTracks) && !errors.Is(err, errNoMatchingTrack) {
			sawProviderError = true
		}
		failures = append(failures, strat.name+": "+err.Error())
		s.logger.Debug("strategy failed",
			logging.String("strategy", strat.name),
			logging.String("video_id", req.VideoID.String()),
			logging.Error(err))
	}

	marker := services.ErrNotFound
	switch {
	case sawUnavailable:
		marker = services.ErrUnavailable
	case sawProviderError:
		marker = services.ErrExternal
	}
	return nil, services.Wrap(marker, "transcript", "fetch", strings.Join(failures, "; "), nil)
}

// finish formats, cleans, and caps a fetched track.
func (s *Service) finish(o outcome, maxLength int) *Result {
	text := textutil.CleanTranscript(formatSegments(o.segments))
	truncated := len([]rune(text)) > maxLength
	return &Result{
		Text:             textutil.Truncate(text, maxLength, s.marker),
		DetectedLanguage: o.language,
		Truncated:        truncated,
	}
}

// formatSegments joins segment texts in order, separated by single spaces.
func formatSegments(segments []captions.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment.Text == "" {
			continue
		}
		parts = append(parts, segment.Text)
	}
	return strings.Join(parts, " ")
}
