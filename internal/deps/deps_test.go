package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary", Optional: true},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if !results[1].Optional {
		t.Fatalf("expected optional flag to be carried through")
	}
}

func TestCheckBinariesEmptyCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Unset"}})
	if results[0].Available {
		t.Fatalf("expected unconfigured command to be unavailable")
	}
	if results[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail %q", results[0].Detail)
	}
}

func TestDefaultsUsesConfiguredBinary(t *testing.T) {
	reqs := Defaults("/opt/tools/yt-dlp")
	if len(reqs) != 1 {
		t.Fatalf("expected a single requirement, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/tools/yt-dlp" {
		t.Fatalf("unexpected command %q", reqs[0].Command)
	}
	if !reqs[0].Optional {
		t.Fatalf("yt-dlp must be optional")
	}

	if reqs := Defaults("  "); reqs[0].Command != "yt-dlp" {
		t.Fatalf("expected default command, got %q", reqs[0].Command)
	}
}
