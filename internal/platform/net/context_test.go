package net

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "rid-1")
	if got := RequestID(ctx); got != "rid-1" {
		t.Fatalf("RequestID = %q", got)
	}
	if RequestID(context.Background()) != "" {
		t.Fatal("expected empty request id")
	}
}

func TestEditor(t *testing.T) {
	base := context.Background()
	if WithEditor(base, "") != base {
		t.Fatal("empty editor should not wrap")
	}
	if got := Editor(WithEditor(base, "jdoe")); got != "jdoe" {
		t.Fatalf("Editor = %q", got)
	}
	if Editor(base) != "" {
		t.Fatal("expected empty editor")
	}
}
