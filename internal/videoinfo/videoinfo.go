package videoinfo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"scribe/internal/logging"
	"scribe/internal/videoid"
)

// Info is the metadata attached to a transcript response.
type Info struct {
	VideoID  videoid.ID
	Title    string
	Duration time.Duration
}

// Provider resolves metadata for a single video.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, id videoid.ID) (*Info, error)
}

// HTTPDoer describes the HTTP client used by HTTP-backed providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Chain tries providers in order and falls back to a placeholder entry
// when none of them can describe the video.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// NewChain builds a lookup chain over the given providers.
func NewChain(logger *slog.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Chain{
		providers: providers,
		logger:    logger.With(logging.String("component", "videoinfo")),
	}
}

// Lookup never fails. Every provider miss is logged and the placeholder
// covers the case where all providers miss.
func (c *Chain) Lookup(ctx context.Context, id videoid.ID) *Info {
	for _, provider := range c.providers {
		info, err := provider.Lookup(ctx, id)
		if err != nil {
			c.logger.Debug("metadata provider failed",
				logging.String("provider", provider.Name()),
				logging.String("video_id", string(id)),
				logging.Error(err))
			continue
		}
		if info == nil || info.Title == "" {
			continue
		}
		info.VideoID = id
		return info
	}
	return Placeholder(id)
}

// Names lists the configured providers for status reporting.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.providers))
	for _, provider := range c.providers {
		names = append(names, provider.Name())
	}
	return names
}

// Placeholder stands in when no provider can describe the video.
func Placeholder(id videoid.ID) *Info {
	return &Info{VideoID: id, Title: fmt.Sprintf("Video %s", id)}
}
