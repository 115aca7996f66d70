package videoinfo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sosodev/duration"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"scribe/internal/videoid"
)

// DataAPI looks up metadata through the YouTube Data API v3. It needs an
// API key and is skipped by the chain when the lookup fails, so a missing
// or revoked key degrades to the next provider instead of an error.
type DataAPI struct {
	apiKey string

	mu  sync.Mutex
	svc *youtube.Service
}

// NewDataAPI creates a Data API provider. An empty key yields a provider
// whose lookups always fail.
func NewDataAPI(apiKey string) *DataAPI {
	return &DataAPI{apiKey: apiKey}
}

// Name identifies the provider in logs and status output.
func (p *DataAPI) Name() string { return "data-api" }

// Configured reports whether an API key is present.
func (p *DataAPI) Configured() bool { return p.apiKey != "" }

func (p *DataAPI) service(ctx context.Context) (*youtube.Service, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.svc != nil {
		return p.svc, nil
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	p.svc = svc
	return svc, nil
}

// Lookup fetches the video's snippet and content details. The ISO-8601
// duration string is parsed into a time.Duration; an unparseable duration
// is dropped rather than failing the lookup.
func (p *DataAPI) Lookup(ctx context.Context, id videoid.ID) (*Info, error) {
	if p.apiKey == "" {
		return nil, errors.New("api key not configured")
	}
	svc, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Videos.List([]string{"snippet", "contentDetails"}).
		Id(string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", id)
	}

	item := resp.Items[0]
	info := &Info{VideoID: id}
	if item.Snippet != nil {
		info.Title = item.Snippet.Title
	}
	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		if parsed, err := duration.Parse(item.ContentDetails.Duration); err == nil {
			info.Duration = parsed.ToTimeDuration()
		}
	}
	return info, nil
}
