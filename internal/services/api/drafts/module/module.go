// Package module wires the editor's drafts into the API using modkit
package module

import (
	"net/http"

	modkit "outofoffice/internal/modkit"
	"outofoffice/internal/modkit/httpkit"
	str "outofoffice/internal/platform/strings"
	draftshttp "outofoffice/internal/services/api/drafts/http"
	draftssvc "outofoffice/internal/services/api/drafts/service"
	pollies "outofoffice/internal/services/api/pollies/domain"
	"outofoffice/internal/services/drafts"
)

// Ports are the ports the drafts module consumes. People comes from the
// pollies module
type Ports struct {
	People pollies.Lookup
}

// Module implements the drafts module
type Module struct {
	built modkit.Built
}

// New constructs the drafts module. Without deps.Drafts an in memory store
// is used. Ports may be supplied with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("drafts"), modkit.WithPrefix("/drafts")}, opts...)...)

	store := deps.Drafts
	if store == nil {
		store, _ = drafts.New(drafts.Options{})
	}
	sd := draftssvc.Deps{Store: store, GigsPath: deps.GigsPath}
	if deps.Dir != nil {
		sd.Source = deps.Dir
	}
	if p, ok := b.Ports.(Ports); ok {
		sd.People = p.People
	}
	s := draftssvc.New(sd)

	external := b.Register
	b.Register = func(r httpkit.Router) {
		draftshttp.Register(r, s)
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

// Ports returns the consumed ports so the registry shows the wiring
func (m *Module) Ports() any { return m.built.Ports }
