package videoid

import (
	"errors"
	"testing"
)

func TestParseSupportedShapes(t *testing.T) {
	const want = "dQw4w9WgXcQ"
	cases := []struct {
		name string
		url  string
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch no scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123"},
		{"watch v not first", "https://www.youtube.com/watch?feature=shared&v=dQw4w9WgXcQ"},
		{"mobile watch", "https://m.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?t=10"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"live", "https://www.youtube.com/live/dQw4w9WgXcQ"},
		{"bare id", "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.url)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tc.url, err)
			}
			if id.String() != want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.url, id, want)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"not a url", "not a url"},
		{"wrong host", "https://vimeo.com/12345678901"},
		{"short id", "https://www.youtube.com/watch?v=short"},
		{"playlist only", "https://www.youtube.com/playlist?list=PL590L5WQmH8dpP0RyH5pCfIWhv7"},
		{"bare id wrong length", "dQw4w9WgXc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.url); !errors.Is(err, ErrInvalidURL) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidURL", tc.url, err)
			}
		})
	}
}

func TestWatchURL(t *testing.T) {
	id, err := Parse("https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := id.WatchURL(); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Fatalf("WatchURL() = %q", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("https://youtu.be/dQw4w9WgXcQ") {
		t.Fatal("expected valid short link")
	}
	if Valid("https://example.com/video") {
		t.Fatal("expected invalid non-YouTube URL")
	}
}
