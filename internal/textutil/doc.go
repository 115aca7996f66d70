// Package textutil provides transcript text normalization.
//
// The primary use cases are:
//   - Stripping bracketed and parenthetical caption annotations ([Music],
//     (inaudible))
//   - Collapsing whitespace runs into single spaces
//   - Truncating cleaned text to a caller-supplied maximum length
//
// Cleaning is idempotent: applying it to already-clean text is a no-op.
package textutil
