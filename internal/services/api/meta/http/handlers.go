// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"outofoffice/internal/core/version"
	"outofoffice/internal/modkit/httpkit"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/services/directory"
)

// Reloader swaps in a fresh data snapshot
type Reloader interface {
	Current() *directory.Directory
	Reload(stdctx.Context) (*directory.Directory, error)
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Source      Reloader
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Post(r, "/reload", h.reload)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ServiceResponse describes the running process and its snapshot
type ServiceResponse struct {
	Name    string           `json:"name"`
	Started string           `json:"started"`
	Uptime  int64            `json:"uptime"`
	Data    *directory.Stats `json:"data,omitempty"`
}

// GET /meta/health
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      h.deps.Source != nil && h.deps.Source.Current() != nil,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// GET /meta/version
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// GET /meta/service
func (h *handlers) service(_ *http.Request) (any, error) {
	resp := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.deps.Now().Sub(h.deps.StartedAt).Seconds()),
	}
	if h.deps.Source != nil {
		if d := h.deps.Source.Current(); d != nil {
			st := d.Stats()
			resp.Data = &st
		}
	}
	return resp, nil
}

// POST /meta/reload re-reads the data directory; a failed reload keeps
// serving the previous snapshot
func (h *handlers) reload(r *http.Request) (any, error) {
	if h.deps.Source == nil {
		return nil, perr.Unavailablef("no data source configured")
	}
	d, err := h.deps.Source.Reload(r.Context())
	if err != nil {
		return nil, err
	}
	return d.Stats(), nil
}
