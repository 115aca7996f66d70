package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transcript" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req TranscriptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.URL != "https://youtu.be/dQw4w9WgXcQ" {
			t.Fatalf("unexpected url %q", req.URL)
		}
		json.NewEncoder(w).Encode(TranscriptResponse{
			Success:          true,
			Transcript:       "hello world",
			VideoID:          "dQw4w9WgXcQ",
			DetectedLanguage: "en",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Fetch(context.Background(), TranscriptRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !resp.Success || resp.Transcript != "hello world" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestClientFetchReturnsFailureEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TranscriptResponse{
			Success: false,
			Error:   "No transcript available for this video. The video might not have captions enabled.",
			VideoID: "dQw4w9WgXcQ",
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Fetch(context.Background(), TranscriptRequest{URL: "x"})
	if err != nil {
		t.Fatalf("envelope failures must not be transport errors: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		json.NewEncoder(w).Encode(HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithToken("sekrit"))
	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if status.Status != "healthy" {
		t.Fatalf("unexpected status %q", status.Status)
	}
}

func TestClientReportsHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Status(context.Background())
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("error should include status code, got %v", err)
	}
}

func TestNewClientAssumesHTTPScheme(t *testing.T) {
	client := NewClient("127.0.0.1:8001")
	if client.baseURL != "http://127.0.0.1:8001" {
		t.Fatalf("unexpected base url %q", client.baseURL)
	}
}
