package videoid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidURL reports input that no resolver pattern matched. Callers must
// treat it as a user input error, not a retrieval failure.
var ErrInvalidURL = errors.New("invalid YouTube URL")

// ID is a validated 11-character YouTube video identifier.
type ID string

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// WatchURL returns the canonical watch URL for the identifier.
func (id ID) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + string(id)
}

// Ordered from the strict standard forms to the looser ones so a watch URL
// never partially matches a path pattern.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?(?:\S*?&)?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/live/([a-zA-Z0-9_-]{11})`),
}

var bareID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Parse extracts a video identifier from a raw URL string. The first pattern
// that matches wins.
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}
	for _, pattern := range urlPatterns {
		if match := pattern.FindStringSubmatch(raw); len(match) > 1 {
			return ID(match[1]), nil
		}
	}
	if bareID.MatchString(raw) {
		return ID(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
}

// Valid reports whether raw would resolve to an identifier.
func Valid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}
