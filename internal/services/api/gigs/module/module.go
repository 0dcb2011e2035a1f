// Package module wires the gigs collection into the API using modkit
package module

import (
	"net/http"

	modkit "outofoffice/internal/modkit"
	"outofoffice/internal/modkit/httpkit"
	str "outofoffice/internal/platform/strings"
	gigshttp "outofoffice/internal/services/api/gigs/http"
)

// Module implements the gigs module
type Module struct {
	built modkit.Built
}

// New constructs the gigs module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("gigs"), modkit.WithPrefix("/gigs")}, opts...)...)

	var src gigshttp.Snapshot
	if deps.Dir != nil {
		src = deps.Dir
	}
	external := b.Register
	b.Register = func(r httpkit.Router) {
		gigshttp.Register(r, src)
		external(r)
	}
	return &Module{built: b}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports returns nil; nothing consumes gigs across modules
func (m *Module) Ports() any { return nil }
