// Package module wires pollies into the API using modkit
package module

import (
	"net/http"

	modkit "outofoffice/internal/modkit"
	"outofoffice/internal/modkit/httpkit"
	str "outofoffice/internal/platform/strings"
	pollieshttp "outofoffice/internal/services/api/pollies/http"
	polliessvc "outofoffice/internal/services/api/pollies/service"
)

// Module implements the pollies module
type Module struct {
	built modkit.Built
	svc   polliessvc.Service
	ports any
}

// New constructs the pollies module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("pollies"), modkit.WithPrefix("/pollies")}, opts...)...)

	var src polliessvc.Snapshot
	if deps.Dir != nil {
		src = deps.Dir
	}
	m := &Module{svc: polliessvc.New(src, deps.Now)}
	m.ports = adaptLookup{svc: m.svc}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		pollieshttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }
