package states

import (
	"fmt"
	"slices"
)

// Factory builds a fresh, unstarted state.
type Factory func() (State, error)

// Registry maps state IDs to factories. Only registered IDs are valid
// transition targets.
type Registry struct {
	factories map[ID]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[ID]Factory),
	}
}

// Register adds a factory under id.
func (r *Registry) Register(id ID, f Factory) error {
	if id == None {
		return fmt.Errorf("register: empty id: %w", ErrInvalidState)
	}
	if f == nil {
		return fmt.Errorf("register %q: nil factory: %w", id, ErrInvalidState)
	}
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateState)
	}
	r.factories[id] = f
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id ID, f Factory) {
	if err := r.Register(id, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under id.
func (r *Registry) Lookup(id ID) (Factory, bool) {
	f, ok := r.factories[id]
	return f, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.factories[id]
	return ok
}

// IDs returns all registered IDs in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// build runs the factory for id. Panics and nil results become ErrConstruction.
func (r *Registry) build(id ID) (s State, err error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrInvalidState)
	}

	defer func() {
		if p := recover(); p != nil {
			s = nil
			err = fmt.Errorf("%q: panic: %v: %w", id, p, ErrConstruction)
		}
	}()

	s, err = f()
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", id, ErrConstruction, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%q: factory returned nil: %w", id, ErrConstruction)
	}
	return s, nil
}
