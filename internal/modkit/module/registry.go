package module

import "sync"

// Registry maps module names to their port sets for cross wiring during
// bootstrap. Build one per composition root
type Registry struct {
	mu  sync.RWMutex
	reg map[string]any
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{reg: map[string]any{}} }

// Register stores a port set for a module name, replacing any previous one
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	r.reg[name] = ports
	r.mu.Unlock()
}

// RegisterModule stores m's ports under m's name
func (r *Registry) RegisterModule(m Module) { r.Register(m.Name(), m.Ports()) }

// Names lists registered module names in no particular order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.reg))
	for k := range r.reg {
		out = append(out, k)
	}
	return out
}

// PortsAs fetches the T registered under name, either the whole port set
// or one exported field of a bundle
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.reg[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return portIn[T](v)
}
