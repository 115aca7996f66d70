package videoinfo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"scribe/internal/videoid"
)

// YtDlp shells out to an optional yt-dlp binary for metadata. The binary is
// not required; a chain configured without it simply skips this provider.
type YtDlp struct {
	binary string
}

// NewYtDlp creates a yt-dlp metadata provider for the given binary path.
func NewYtDlp(binary string) *YtDlp {
	return &YtDlp{binary: strings.TrimSpace(binary)}
}

// Name identifies the provider in logs and status output.
func (p *YtDlp) Name() string { return "yt-dlp" }

// Lookup asks yt-dlp to print the title and duration without downloading.
func (p *YtDlp) Lookup(ctx context.Context, id videoid.ID) (*Info, error) {
	if p.binary == "" {
		return nil, errors.New("yt-dlp binary not configured")
	}
	cmd := exec.CommandContext(ctx, p.binary,
		"--no-download",
		"--no-warnings",
		"--print", "title",
		"--print", "duration",
		id.WatchURL())
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run yt-dlp: %w", err)
	}
	return parseYtDlpOutput(id, out)
}

// parseYtDlpOutput expects the title on the first line and the duration in
// seconds on the second. A missing or malformed duration is dropped.
func parseYtDlpOutput(id videoid.ID, out []byte) (*Info, error) {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	title := strings.TrimSpace(lines[0])
	if title == "" {
		return nil, errors.New("yt-dlp returned no title")
	}
	info := &Info{VideoID: id, Title: title}
	if len(lines) > 1 {
		if seconds, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64); err == nil {
			info.Duration = time.Duration(seconds * float64(time.Second))
		}
	}
	return info, nil
}
