// Package http provides http transport for the committed gigs collection
package http

import (
	stdhttp "net/http"

	"outofoffice/internal/core/gigs"
	"outofoffice/internal/modkit/httpkit"
	perr "outofoffice/internal/platform/errors"
	"outofoffice/internal/services/directory"
)

const (
	defaultLimit = 200
	maxLimit     = 2000
)

// Snapshot yields the directory currently being served
type Snapshot interface {
	Current() *directory.Directory
}

// Register mounts gigs endpoints on the given router
func Register(r httpkit.Router, src Snapshot) {
	h := &handlers{src: src}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/counts", h.counts)
	httpkit.Get(r, "/categories", h.categories)
}

type handlers struct{ src Snapshot }

func (h *handlers) current() (*directory.Directory, error) {
	if h.src == nil || h.src.Current() == nil {
		return nil, perr.Unavailablef("directory not loaded")
	}
	return h.src.Current(), nil
}

// GET /gigs?pollie=&offset=&limit=
// Items carry their position in gigs.json, which is the id the editor uses
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	d, err := h.current()
	if err != nil {
		return nil, err
	}
	items := gigs.Indexed(d.Gigs())
	if slug := r.URL.Query().Get("pollie"); slug != "" {
		kept := items[:0:0]
		for _, g := range items {
			if g.PollieSlug == slug {
				kept = append(kept, g)
			}
		}
		items = kept
	}
	return httpkit.Window(r, items, defaultLimit, maxLimit), nil
}

// GET /gigs/counts?verified=
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	verified, err := httpkit.QueryBool(r, "verified", false)
	if err != nil {
		return nil, err
	}
	d, err := h.current()
	if err != nil {
		return nil, err
	}
	return d.GigCounts(verified), nil
}

// GET /gigs/categories
func (h *handlers) categories(_ *stdhttp.Request) (any, error) {
	return gigs.Categories, nil
}
