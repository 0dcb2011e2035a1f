// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	modkit "outofoffice/internal/modkit"
	"outofoffice/internal/modkit/httpkit"
	str "outofoffice/internal/platform/strings"

	metahttp "outofoffice/internal/services/api/meta/http"
)

// ServiceName is reported by /meta endpoints
const ServiceName = "ooo-api"

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	startedAt := deps.StartedAt
	if startedAt.IsZero() {
		startedAt = deps.Clock()
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		d := metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   startedAt,
			Now:         deps.Now,
		}
		if deps.Dir != nil {
			d.Source = deps.Dir
		}
		metahttp.Register(r, d)
		external(r)
	}

	return &Module{built: b}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
