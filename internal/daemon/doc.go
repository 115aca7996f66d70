// Package daemon coordinates the long-running Scribe process.
//
// It wires configuration, the caption provider, the transcript service, and
// the metadata chain into a single lifecycle with flock-based locking to
// prevent multiple instances, and serves the HTTP API (transcript fetch,
// health, status) with CORS and optional bearer-token auth.
//
// Keep orchestration logic here: transcript semantics live in their own
// packages while the daemon focuses on startup, shutdown, and the HTTP
// surface.
package daemon
