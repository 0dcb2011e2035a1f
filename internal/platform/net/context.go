// Package net holds request scoped context values shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyEditor ctxKey = "editor"

// WithRequest stores reqID where chi's middleware.GetReqID finds it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// WithEditor records who is drafting gigs on this request. It is an
// attribution label only, never an identity check
func WithEditor(ctx context.Context, editor string) context.Context {
	if editor == "" {
		return ctx
	}
	return context.WithValue(ctx, keyEditor, editor)
}

// RequestID returns the request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Editor returns the editor label or ""
func Editor(ctx context.Context) string {
	v, _ := ctx.Value(keyEditor).(string)
	return v
}
