package effect

import (
	"errors"
	"fmt"
	"sort"
)

// Factory builds one effect instance.
type Factory func() Effect

// Registry maps effect type identifiers to factories and metadata.
type Registry struct {
	factories map[uint8]Factory
	metas     map[uint8]*Metadata
}

var errDuplicateType = errors.New("duplicate effect type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[uint8]Factory),
		metas:     make(map[uint8]*Metadata),
	}
}

// Register adds a factory and its metadata for one effect type.
func (r *Registry) Register(meta *Metadata, factory Factory) error {
	if meta == nil {
		return errors.New("nil metadata")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[meta.Type]; exists {
		return fmt.Errorf("%w: %d", errDuplicateType, meta.Type)
	}

	r.factories[meta.Type] = factory
	r.metas[meta.Type] = meta

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(meta *Metadata, factory Factory) {
	err := r.Register(meta, factory)
	if err != nil {
		panic("effect registry: " + err.Error())
	}
}

// New builds a fresh instance of the given type, or nil if unknown.
func (r *Registry) New(typeID uint8) Effect {
	factory := r.factories[typeID]
	if factory == nil {
		return nil
	}
	return factory()
}

// Metadata returns the descriptor for the given type, or nil.
func (r *Registry) Metadata(typeID uint8) *Metadata {
	return r.metas[typeID]
}

// Types returns all registered type identifiers in ascending order.
func (r *Registry) Types() []uint8 {
	out := make([]uint8, 0, len(r.factories))
	for id := range r.factories {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
