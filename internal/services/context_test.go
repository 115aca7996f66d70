package services

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	id, ok := RequestIDFromContext(ctx)
	if !ok || id != "abc-123" {
		t.Fatalf("expected request id to round-trip, got %q (%v)", id, ok)
	}
}

func TestEmptyAnnotationsAreNoops(t *testing.T) {
	base := context.Background()
	if ctx := WithRequestID(base, ""); ctx != base {
		t.Fatal("empty request id should not allocate a new context")
	}
	if _, ok := ComponentFromContext(base); ok {
		t.Fatal("expected no component on fresh context")
	}
	if _, ok := VideoIDFromContext(base); ok {
		t.Fatal("expected no video id on fresh context")
	}
}

func TestVideoIDRoundTrip(t *testing.T) {
	ctx := WithVideoID(WithComponent(context.Background(), "transcript"), "dQw4w9WgXcQ")
	if v, ok := VideoIDFromContext(ctx); !ok || v != "dQw4w9WgXcQ" {
		t.Fatalf("video id round-trip failed: %q (%v)", v, ok)
	}
	if c, ok := ComponentFromContext(ctx); !ok || c != "transcript" {
		t.Fatalf("component round-trip failed: %q (%v)", c, ok)
	}
}
