package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNoCaptionTracks means the video exists but exposes no caption
	// tracks at all.
	ErrNoCaptionTracks = errors.New("no caption tracks")
	// ErrVideoUnavailable means the provider refused to serve the video:
	// private, removed, or region-restricted.
	ErrVideoUnavailable = errors.New("video unavailable")
)

const (
	defaultBaseURL = "https://www.youtube.com"

	// The Android Innertube client serves caption metadata without
	// requiring a proof-of-origin token.
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
)

// HTTPDoer describes the HTTP client used for provider requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches caption track listings and track content.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the provider base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimRight(strings.TrimSpace(base), "/")
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithProxy routes provider requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		proxyURL = strings.TrimSpace(proxyURL)
		if proxyURL == "" {
			return
		}
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return
		}
		c.httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: &http.Transport{Proxy: http.ProxyURL(parsed)},
		}
	}
}

// New creates a caption provider client.
func New(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type innertubeRequest struct {
	Context innertubeContext `json:"context"`
	VideoID string           `json:"videoId"`
}

type innertubeContext struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSDKVersion int    `json:"androidSdkVersion"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []captionTrackJSON `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrackJSON struct {
	BaseURL      string    `json:"baseUrl"`
	Name         trackName `json:"name"`
	LanguageCode string    `json:"languageCode"`
	Kind         string    `json:"kind"`
}

// trackName absorbs both name encodings Innertube clients return.
type trackName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n trackName) value() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	var b strings.Builder
	for _, run := range n.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// List fetches the caption tracks a video exposes, in provider order.
func (c *Client) List(ctx context.Context, videoID string) (TrackList, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.New("video id must not be empty")
	}

	body, err := json.Marshal(innertubeRequest{
		Context: innertubeContext{
			Client: innertubeClient{
				ClientName:        innertubeClientName,
				ClientVersion:     innertubeClientVersion,
				AndroidSDKVersion: 30,
			},
		},
		VideoID: videoID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode player request: %w", err)
	}

	endpoint := c.baseURL + "/youtubei/v1/player"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player endpoint returned %d", resp.StatusCode)
	}

	var payload playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}

	if status := payload.PlayabilityStatus.Status; status != "" && status != "OK" {
		reason := strings.TrimSpace(payload.PlayabilityStatus.Reason)
		if reason == "" {
			reason = status
		}
		return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, reason)
	}

	raw := payload.Captions.Renderer.CaptionTracks
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w for video %s", ErrNoCaptionTracks, videoID)
	}

	tracks := make(TrackList, 0, len(raw))
	for _, entry := range raw {
		if entry.BaseURL == "" {
			continue
		}
		tracks = append(tracks, Track{
			LanguageCode: entry.LanguageCode,
			Name:         entry.Name.value(),
			Kind:         entry.Kind,
			BaseURL:      entry.BaseURL,
		})
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w for video %s", ErrNoCaptionTracks, videoID)
	}
	return tracks, nil
}

// Download fetches a track's timedtext content as ordered segments.
func (c *Client) Download(ctx context.Context, track Track) ([]Segment, error) {
	if strings.TrimSpace(track.BaseURL) == "" {
		return nil, errors.New("track has no content URL")
	}
	target := track.BaseURL
	if strings.HasPrefix(target, "/") {
		target = c.baseURL + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build timedtext request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext endpoint returned %d", resp.StatusCode)
	}

	return decodeTimedText(resp.Body)
}
