// Package captions is the HTTP client for YouTube's caption data. It lists
// the caption tracks a video exposes through the Innertube player endpoint
// and downloads timedtext track content as ordered segments.
//
// The client reports two distinct failure classes: a video that simply has
// no caption tracks (ErrNoCaptionTracks) and provider-side failures such as
// private or removed videos (ErrVideoUnavailable).
package captions
