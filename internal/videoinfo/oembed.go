package videoinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scribe/internal/videoid"
)

const defaultOEmbedBaseURL = "https://www.youtube.com"

// OEmbed looks up metadata through the public oEmbed endpoint. It needs no
// credentials but only returns the title; duration stays zero.
type OEmbed struct {
	baseURL    string
	httpClient HTTPDoer
}

// OEmbedOption configures an OEmbed provider.
type OEmbedOption func(*OEmbed)

// WithOEmbedHTTPClient overrides the default HTTP client.
func WithOEmbedHTTPClient(client HTTPDoer) OEmbedOption {
	return func(p *OEmbed) {
		if client != nil {
			p.httpClient = client
		}
	}
}

// WithOEmbedBaseURL overrides the endpoint base URL.
func WithOEmbedBaseURL(base string) OEmbedOption {
	return func(p *OEmbed) {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base != "" {
			p.baseURL = base
		}
	}
}

// NewOEmbed creates an oEmbed metadata provider.
func NewOEmbed(opts ...OEmbedOption) *OEmbed {
	provider := &OEmbed{
		baseURL:    defaultOEmbedBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(provider)
	}
	return provider
}

// Name identifies the provider in logs and status output.
func (p *OEmbed) Name() string { return "oembed" }

// Lookup fetches the video title from the oEmbed endpoint.
func (p *OEmbed) Lookup(ctx context.Context, id videoid.ID) (*Info, error) {
	endpoint := p.baseURL + "/oembed?url=" + url.QueryEscape(id.WatchURL()) + "&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build oembed request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute oembed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oembed endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode oembed response: %w", err)
	}
	if payload.Title == "" {
		return nil, errors.New("oembed response has no title")
	}
	return &Info{VideoID: id, Title: payload.Title}, nil
}
