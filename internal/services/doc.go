// Package services provides shared plumbing for scribe's request pipeline:
// the error taxonomy surfaced through the HTTP API and context helpers for
// request-scoped annotations.
package services
