package captions_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"scribe/internal/captions"
)

func playerPayload(tracks ...map[string]any) map[string]any {
	return map[string]any{
		"playabilityStatus": map[string]any{"status": "OK"},
		"captions": map[string]any{
			"playerCaptionsTracklistRenderer": map[string]any{
				"captionTracks": tracks,
			},
		},
	}
}

func TestListReturnsTracksInProviderOrder(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtubei/v1/player" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		var body struct {
			VideoID string `json:"videoId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		if body.VideoID != "dQw4w9WgXcQ" {
			t.Fatalf("unexpected video id %q", body.VideoID)
		}
		payload := playerPayload(
			map[string]any{
				"baseUrl":      server.URL + "/api/timedtext?lang=fr",
				"name":         map[string]any{"simpleText": "French"},
				"languageCode": "fr",
			},
			map[string]any{
				"baseUrl":      server.URL + "/api/timedtext?lang=en",
				"name":         map[string]any{"runs": []map[string]any{{"text": "English (auto-generated)"}}},
				"languageCode": "en",
				"kind":         "asr",
			},
		)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)

	client := captions.New(captions.WithBaseURL(server.URL))
	tracks, err := client.List(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if tracks[0].LanguageCode != "fr" || tracks[0].Generated() {
		t.Fatalf("expected manual French first, got %+v", tracks[0])
	}
	if tracks[1].LanguageCode != "en" || !tracks[1].Generated() {
		t.Fatalf("expected generated English second, got %+v", tracks[1])
	}
	if tracks[1].Name != "English (auto-generated)" {
		t.Fatalf("runs-form name not decoded: %q", tracks[1].Name)
	}
}

func TestListReportsNoCaptionTracks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"playabilityStatus": map[string]any{"status": "OK"},
		})
	}))
	t.Cleanup(server.Close)

	client := captions.New(captions.WithBaseURL(server.URL))
	if _, err := client.List(context.Background(), "dQw4w9WgXcQ"); !errors.Is(err, captions.ErrNoCaptionTracks) {
		t.Fatalf("expected ErrNoCaptionTracks, got %v", err)
	}
}

func TestListReportsUnavailableVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"playabilityStatus": map[string]any{
				"status": "LOGIN_REQUIRED",
				"reason": "This video is private",
			},
		})
	}))
	t.Cleanup(server.Close)

	client := captions.New(captions.WithBaseURL(server.URL))
	_, err := client.List(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, captions.ErrVideoUnavailable) {
		t.Fatalf("expected ErrVideoUnavailable, got %v", err)
	}
}

func TestListRejectsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := captions.New(captions.WithBaseURL(server.URL))
	if _, err := client.List(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Fatal("expected error for HTTP 429")
	}
}

func TestDownloadDecodesSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.0" dur="2.5">Hello &amp;amp; welcome</text>
  <text start="2.5" dur="1.0">   </text>
  <text start="3.5" dur="2.0">to the show</text>
</transcript>`)
	}))
	t.Cleanup(server.Close)

	client := captions.New(captions.WithBaseURL(server.URL))
	segments, err := client.Download(context.Background(), captions.Track{BaseURL: server.URL + "/api/timedtext"})
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected blank segment dropped, got %d segments", len(segments))
	}
	if segments[0].Text != "Hello & welcome" {
		t.Fatalf("entities not unescaped: %q", segments[0].Text)
	}
	if segments[1].Start != 3.5 || segments[1].Dur != 2.0 {
		t.Fatalf("timing attrs not decoded: %+v", segments[1])
	}
}

func TestDownloadRequiresBaseURL(t *testing.T) {
	client := captions.New()
	if _, err := client.Download(context.Background(), captions.Track{}); err == nil {
		t.Fatal("expected error for track without content URL")
	}
}
