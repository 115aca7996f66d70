package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrInvalidInput marks user input that failed validation, such as a URL
	// no resolver pattern matched.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks requests for which every retrieval strategy was
	// exhausted without a usable caption track.
	ErrNotFound = errors.New("not found")
	// ErrExternal marks provider failures that are not "no captions":
	// network errors, rate limiting, malformed provider responses.
	ErrExternal = errors.New("external provider error")
	// ErrUnavailable marks videos the provider refuses to serve at all:
	// deleted, private, or region-restricted.
	ErrUnavailable = errors.New("video unavailable")
	// ErrConfiguration marks failures caused by missing or invalid settings.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternal
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// UserMessage maps a pipeline error to the human-readable string returned in
// the API envelope. The wording matches what existing clients parse.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Invalid YouTube URL format. Please provide a valid YouTube video URL."
	case errors.Is(err, ErrNotFound):
		return "No transcript available for this video. The video might not have captions enabled."
	case errors.Is(err, ErrUnavailable):
		return "Video is unavailable, private, or region-restricted."
	case errors.Is(err, ErrConfiguration):
		return "Service is not configured for transcript retrieval."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), isNetworkError(err):
		return "Network error. Please check your connection and try again."
	default:
		return fmt.Sprintf("Failed to fetch transcript: %v", err)
	}
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
