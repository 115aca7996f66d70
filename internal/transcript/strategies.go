package transcript

import (
	"context"
	"errors"
	"fmt"

	"scribe/internal/captions"
	"scribe/internal/language"
)

// errNoMatchingTrack reports a listing that contained tracks, none of which
// satisfied the strategy's selection rules.
var errNoMatchingTrack = errors.New("no matching caption track")

// outcome is a strategy's successful product before post-processing.
type outcome struct {
	segments []captions.Segment
	language string
}

type strategy struct {
	name string
	run  func(ctx context.Context, videoID, lang string) (outcome, error)
}

func (s *Service) strategies() []strategy {
	return []strategy{
		{name: "direct", run: s.fetchDirect},
		{name: "enumeration", run: s.fetchEnumerated},
	}
}

// fetchDirect requests captions in the requested language, trying the code
// itself and its same-language regional variants. Manually authored tracks
// win over auto-generated ones regardless of provider order. Detected
// language is the requested code.
func (s *Service) fetchDirect(ctx context.Context, videoID, lang string) (outcome, error) {
	tracks, err := s.provider.List(ctx, videoID)
	if err != nil {
		return outcome{}, err
	}
	variants := language.Variants(lang)
	track, ok := tracks.FindManuallyCreated(variants...)
	if !ok {
		track, ok = tracks.FindGenerated(variants...)
	}
	if !ok {
		return outcome{}, fmt.Errorf("%w in language %q", errNoMatchingTrack, lang)
	}
	segments, err := s.provider.Download(ctx, track)
	if err != nil {
		return outcome{}, err
	}
	return outcome{segments: segments, language: lang}, nil
}

// fetchEnumerated lists every available track and selects by strict
// priority: a manual track in the requested language, a generated track in
// the requested language, any manual track, any generated track, any track.
// Ties within a rule are broken by provider order. Detected language is the
// selected track's reported code.
func (s *Service) fetchEnumerated(ctx context.Context, videoID, lang string) (outcome, error) {
	tracks, err := s.provider.List(ctx, videoID)
	if err != nil {
		return outcome{}, err
	}

	track, ok := selectTrack(tracks, lang)
	if !ok {
		return outcome{}, errNoMatchingTrack
	}

	segments, err := s.provider.Download(ctx, track)
	if err != nil {
		return outcome{}, err
	}
	return outcome{segments: segments, language: language.Normalize(track.LanguageCode)}, nil
}

func selectTrack(tracks captions.TrackList, lang string) (captions.Track, bool) {
	if track, ok := tracks.FindManuallyCreated(lang); ok {
		return track, true
	}
	if track, ok := tracks.FindGenerated(lang); ok {
		return track, true
	}
	generated := false
	if track, ok := tracks.First(&generated); ok {
		return track, true
	}
	generated = true
	if track, ok := tracks.First(&generated); ok {
		return track, true
	}
	return tracks.First(nil)
}
