package textutil

import (
	"regexp"
	"strings"
)

var (
	bracketed     = regexp.MustCompile(`(?s)\[.*?\]`)
	parenthesized = regexp.MustCompile(`(?s)\(.*?\)`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// StripAnnotations removes bracketed and parenthetical caption annotations
// such as "[Music]" or "(inaudible)". Matching is non-greedy from each
// opening delimiter, so after one pass no open-then-close pair can remain
// and re-running the strip is a no-op.
func StripAnnotations(text string) string {
	text = bracketed.ReplaceAllString(text, "")
	return parenthesized.ReplaceAllString(text, "")
}

// CollapseWhitespace reduces every whitespace run, including newlines and
// tabs, to a single space.
func CollapseWhitespace(text string) string {
	return whitespace.ReplaceAllString(text, " ")
}

// CleanTranscript normalizes transcript text: annotations stripped,
// whitespace collapsed, ends trimmed.
func CleanTranscript(text string) string {
	if text == "" {
		return ""
	}
	text = StripAnnotations(text)
	text = CollapseWhitespace(text)
	return strings.TrimSpace(text)
}

// Truncate caps text at max characters, appending marker when anything was
// cut. The marker does not count against max. A non-positive max disables
// truncation. Length is measured in runes so multibyte text never splits
// mid-character.
func Truncate(text string, max int, marker string) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + marker
}
