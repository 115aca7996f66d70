package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/api"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestFetchCommandPrintsTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcript" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.TranscriptResponse{
			Success:          true,
			Transcript:       "hello from the test",
			VideoID:          "dQw4w9WgXcQ",
			DetectedLanguage: "en",
			Title:            "Test Video",
			Duration:         212,
		})
	}))
	defer server.Close()

	out, err := runCommand(t, "fetch", "https://youtu.be/dQw4w9WgXcQ", "--server", server.URL)
	if err != nil {
		t.Fatalf("fetch command failed: %v", err)
	}
	if !strings.Contains(out, "hello from the test") {
		t.Fatalf("transcript missing from output: %q", out)
	}
}

func TestFetchCommandDetailsTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.TranscriptResponse{
			Success:    true,
			Transcript: "body",
			VideoID:    "dQw4w9WgXcQ",
			Title:      "Test Video",
		})
	}))
	defer server.Close()

	out, err := runCommand(t, "fetch", "https://youtu.be/dQw4w9WgXcQ", "--server", server.URL, "--details")
	if err != nil {
		t.Fatalf("fetch command failed: %v", err)
	}
	if !strings.Contains(out, "Test Video") || !strings.Contains(out, "dQw4w9WgXcQ") {
		t.Fatalf("details table missing from output: %q", out)
	}
}

func TestFetchCommandSurfacesEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.TranscriptResponse{
			Success: false,
			Error:   "No transcript available for this video. The video might not have captions enabled.",
		})
	}))
	defer server.Close()

	_, err := runCommand(t, "fetch", "https://youtu.be/dQw4w9WgXcQ", "--server", server.URL)
	if err == nil {
		t.Fatal("expected error for failure envelope")
	}
	if !strings.Contains(err.Error(), "No transcript available") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestHealthCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	out, err := runCommand(t, "health", "--server", server.URL)
	if err != nil {
		t.Fatalf("health command failed: %v", err)
	}
	if !strings.Contains(out, "healthy") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStatusCommandRendersDependencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.DaemonStatus{
			Running: true,
			PID:     42,
			Bind:    "127.0.0.1:8001",
			Capabilities: api.Capabilities{
				CaptionsProvider:  "innertube",
				MetadataProviders: []string{"oembed"},
			},
			Dependencies: []api.DependencyStatus{
				{Name: "yt-dlp", Command: "yt-dlp", Optional: true, Available: false, Detail: `binary "yt-dlp" not found`},
			},
		})
	}))
	defer server.Close()

	out, err := runCommand(t, "status", "--server", server.URL)
	if err != nil {
		t.Fatalf("status command failed: %v", err)
	}
	if !strings.Contains(out, "innertube") || !strings.Contains(out, "yt-dlp") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output should mention target path: %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[server]") {
		t.Fatalf("sample config missing server section")
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when file exists without --overwrite")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v", err)
	}
}
