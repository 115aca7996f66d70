package captions

import (
	"scribe/internal/language"
)

// Track describes one caption track as the provider reports it.
type Track struct {
	LanguageCode string
	Name         string
	Kind         string
	BaseURL      string
}

// Generated reports whether the track is auto-generated speech-to-text
// rather than manually authored.
func (t Track) Generated() bool { return t.Kind == "asr" }

// TrackList holds a video's caption tracks in provider-reported order. That
// order is significant: selection ties are broken by position, never by
// re-sorting.
type TrackList []Track

// Find returns the first track matching any of the requested language codes,
// tried in the order given.
func (l TrackList) Find(languages ...string) (Track, bool) {
	return l.find(nil, languages)
}

// FindManuallyCreated returns the first manually authored track matching any
// requested language code.
func (l TrackList) FindManuallyCreated(languages ...string) (Track, bool) {
	generated := false
	return l.find(&generated, languages)
}

// FindGenerated returns the first auto-generated track matching any
// requested language code.
func (l TrackList) FindGenerated(languages ...string) (Track, bool) {
	generated := true
	return l.find(&generated, languages)
}

// First returns the first track satisfying the generated filter, or the
// first track at all when the filter is nil.
func (l TrackList) First(generated *bool) (Track, bool) {
	for _, track := range l {
		if generated != nil && track.Generated() != *generated {
			continue
		}
		return track, true
	}
	return Track{}, false
}

func (l TrackList) find(generated *bool, languages []string) (Track, bool) {
	for _, lang := range languages {
		for _, track := range l {
			if generated != nil && track.Generated() != *generated {
				continue
			}
			if language.Matches(lang, track.LanguageCode) {
				return track, true
			}
		}
	}
	return Track{}, false
}

// Languages returns the provider-reported language codes in order.
func (l TrackList) Languages() []string {
	codes := make([]string, 0, len(l))
	for _, track := range l {
		codes = append(codes, track.LanguageCode)
	}
	return codes
}

// Segment is one timed caption entry.
type Segment struct {
	Start float64
	Dur   float64
	Text  string
}
