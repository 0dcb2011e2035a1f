package module

import "reflect"

// PortSet is whatever a module returns from Ports: a single port value, or a
// struct bundling several, like the drafts module's consumed ports
type PortSet = any

// portIn finds a T in p. p may be the port itself or a struct (or pointer to
// struct) whose exported fields hold ports; nil fields never match
func portIn[T any](p PortSet) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if (f.Kind() == reflect.Interface || f.Kind() == reflect.Pointer) && f.IsNil() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
