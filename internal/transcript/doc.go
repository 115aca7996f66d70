// Package transcript retrieves and normalizes video transcripts.
//
// Retrieval runs an ordered chain of strategies against the caption
// provider: a direct fetch in the requested language (including same-language
// regional variants), then an enumeration pass that selects the best
// available track by a strict priority order. The first strategy to succeed
// wins; when all fail, the returned error summarizes every attempt.
package transcript
