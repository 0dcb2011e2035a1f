package modkit

import (
	"net/http"

	"outofoffice/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register attaches the module's endpoints; modules wrap it to add their
	// own routes ahead of any caller supplied via WithRegister
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount attaches b's routes to r under b.Prefix with b.Mw, the way every
// module's MountRoutes does
func (b Built) Mount(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, b.Register)
}
