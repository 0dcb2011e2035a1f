package httpkit

import (
	"net/http"
	"time"

	"outofoffice/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
}

// CommonStack returns the per API scope middleware slice. The server root
// already carries middleware.Defaults (ids, recovery, timeout, compression)
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// cross-origin for the browser editor, before anything can 404
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.StripSlashes(),
	}
}
