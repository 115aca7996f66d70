// Package api defines wire-format types for the transcript HTTP API and a
// client for talking to a running daemon.
//
// The transcript endpoint keeps snake_case JSON field names so existing
// front-end consumers keep working unchanged. Requests always produce an
// HTTP 200 envelope; failures are carried as success=false plus a
// human-readable error string rather than an HTTP status code.
package api
