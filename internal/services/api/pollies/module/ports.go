package module

import (
	"context"

	"outofoffice/internal/services/api/pollies/domain"
	polliessvc "outofoffice/internal/services/api/pollies/service"
)

// Ports returns the module ports, a domain.Lookup
func (m *Module) Ports() any { return m.ports }

type adaptLookup struct{ svc polliessvc.Service }

var _ domain.Lookup = adaptLookup{}

// Exists reports whether slug names someone in the current snapshot
func (a adaptLookup) Exists(ctx context.Context, slug string) (bool, error) {
	_, ok, err := a.svc.Person(ctx, slug)
	return ok, err
}

// Name returns the display name for slug, "" if unknown
func (a adaptLookup) Name(ctx context.Context, slug string) (string, error) {
	p, _, err := a.svc.Person(ctx, slug)
	return p.Name, err
}
