package tween

import (
	"strconv"

	"github.com/kamstrup/intmap"
)

// TypeTag identifies a target type within a Registry. Applications allocate
// their own tag values; the engine never interprets them beyond table lookup.
type TypeTag uint32

// Accessor bridges the engine to the attributes of one target type.
//
// GetValues writes the current values of the attribute set selected by kind
// into out (at most len(out) entries) and returns how many channels that set
// occupies. SetValues writes them back. The same kind must always resolve to
// the same channel count for a given target.
type Accessor interface {
	GetValues(target any, kind int, out []float64) int
	SetValues(target any, kind int, in []float64)
}

// Registry resolves type tags to accessors. Each engine instance owns its
// registry; there is no process-wide table. Registries are built up-front and
// read from then on, so no locking is applied.
type Registry struct {
	accessors *intmap.Map[TypeTag, Accessor]
}

// NewRegistry creates an empty accessor registry.
func NewRegistry() *Registry {
	return &Registry{
		accessors: intmap.New[TypeTag, Accessor](16),
	}
}

// Register binds tag to a. Re-registering a tag replaces the previous
// binding.
func (r *Registry) Register(tag TypeTag, a Accessor) {
	if a == nil {
		panic("tween: nil accessor registered for type tag " + strconv.FormatUint(uint64(tag), 10))
	}
	r.accessors.Put(tag, a)
}

// Resolve looks up the accessor bound to tag.
func (r *Registry) Resolve(tag TypeTag) (Accessor, bool) {
	return r.accessors.Get(tag)
}

// Len reports how many tags are registered.
func (r *Registry) Len() int {
	return r.accessors.Len()
}

// resolveAccessor finds the accessor for target: registry binding first, the
// target's own Accessor implementation second. Configuration fails hard when
// neither exists.
func resolveAccessor(reg *Registry, target any, tag TypeTag) Accessor {
	if reg != nil {
		if a, ok := reg.Resolve(tag); ok {
			return a
		}
	}
	if a, ok := target.(Accessor); ok {
		return a
	}
	panic("tween: no accessor for type tag " + strconv.FormatUint(uint64(tag), 10) +
		" and target does not implement Accessor")
}
