// Package http provides http transport for the editor's drafts
package http

import (
	stdhttp "net/http"

	"outofoffice/internal/core/gigs"
	"outofoffice/internal/modkit/httpkit"
	"outofoffice/internal/services/api/drafts/domain"
	svc "outofoffice/internal/services/api/drafts/service"
)

// Register mounts drafts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON(r, "/", h.add)
	httpkit.Delete(r, "/", h.clear)

	httpkit.Get(r, "/last-pollie", h.lastPollie)
	httpkit.PutJSON(r, "/last-pollie", h.setLastPollie)

	// dry run of the commit against the live collection
	httpkit.Post(r, "/preview", h.preview)
	httpkit.Post(r, "/commit", h.commit)

	httpkit.PutJSON(r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// GET /drafts
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context()), nil
}

// POST /drafts; an empty verified_by takes the X-Editor header
func (h *handlers) add(r *stdhttp.Request, in gigs.Gig) (any, error) {
	d, err := h.svc.Add(r.Context(), in, httpkit.Editor(r))
	if err != nil {
		return nil, err
	}
	return httpkit.Created(d), nil
}

// DELETE /drafts
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	if err := h.svc.Clear(r.Context()); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// PUT /drafts/{id}
func (h *handlers) update(r *stdhttp.Request, in gigs.Gig) (any, error) {
	id, err := httpkit.MustParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), id, in, httpkit.Editor(r))
}

// DELETE /drafts/{id}
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.MustParam(r, "id")
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// GET /drafts/last-pollie
func (h *handlers) lastPollie(r *stdhttp.Request) (any, error) {
	return h.svc.LastPollie(r.Context())
}

// PUT /drafts/last-pollie
func (h *handlers) setLastPollie(r *stdhttp.Request, in domain.LastPollieInput) (any, error) {
	return h.svc.SetLastPollie(r.Context(), in.Slug)
}

// POST /drafts/preview
func (h *handlers) preview(r *stdhttp.Request) (any, error) {
	return h.svc.Preview(r.Context())
}

// POST /drafts/commit
func (h *handlers) commit(r *stdhttp.Request) (any, error) {
	return h.svc.Commit(r.Context())
}
