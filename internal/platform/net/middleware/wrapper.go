// Package middleware adapts chi and go-chi/cors middleware without leaking
// chi types, and holds the in house request middlewares
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "outofoffice/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-Id on the context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress wraps chi's compressor at level
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes drops a trailing slash from the routed path
func StripSlashes() Middleware { return chimw.StripSlashes }

// NoCache disables client and proxy caching; drafts are mutable
func NoCache() Middleware { return chimw.NoCache }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// AllowContentType answers 415 to a request whose body is not one of types.
// Bodyless requests pass
func AllowContentType(types ...string) Middleware { return chimw.AllowContentType(types...) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS lets the browser editor call the API from the static site origin
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
			EditorHeader,
		}),
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the base stack every API server mounts
func Defaults() []Middleware {
	return []Middleware{
		RealIP(),
		RequestID(),
		RequestContext,
		RecoverJSON,
		Timeout(30 * time.Second),
		Compress(flate.DefaultCompression),
	}
}
