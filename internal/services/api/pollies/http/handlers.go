// Package http provides http transport for pollies
package http

import (
	stdhttp "net/http"

	"outofoffice/internal/modkit/httpkit"
	"outofoffice/internal/services/api/pollies/domain"
	svc "outofoffice/internal/services/api/pollies/service"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Register mounts pollies endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// paged index of everyone with a slug
	httpkit.Get(r, "/", h.list)

	// search box options, first occurrence per slug
	httpkit.Get(r, "/options", h.options)

	// homepage listing
	httpkit.Get(r, "/decades", h.decades)

	// research queue
	httpkit.Get(r, "/candidates", h.candidates)

	httpkit.Get(r, "/{slug}", h.get)
}

type handlers struct{ svc svc.Service }

// GET /pollies?offset=&limit=
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Window(r, items, defaultLimit, maxLimit), nil
}

// GET /pollies/options
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context())
}

// GET /pollies/decades?skip_current=&min_decade=
func (h *handlers) decades(r *stdhttp.Request) (any, error) {
	skip, err := httpkit.QueryBool(r, "skip_current", false)
	if err != nil {
		return nil, err
	}
	minDecade, err := httpkit.QueryInt(r, "min_decade", 0, 0)
	if err != nil {
		return nil, err
	}
	return h.svc.Decades(r.Context(), domain.DecadesInput{SkipCurrent: skip, MinDecade: minDecade})
}

// GET /pollies/candidates?strategy=&limit=
func (h *handlers) candidates(r *stdhttp.Request) (any, error) {
	limit, err := httpkit.QueryInt(r, "limit", 10, maxLimit)
	if err != nil {
		return nil, err
	}
	in := domain.CandidatesInput{Strategy: r.URL.Query().Get("strategy"), Limit: limit}
	return h.svc.Candidates(r.Context(), in)
}

// GET /pollies/{slug}
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	slug, err := httpkit.MustParam(r, "slug")
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), slug)
}
