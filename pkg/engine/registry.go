package engine

import (
	"fmt"

	"github.com/praetorian-inc/strmatch/pkg/types"
)

// LookupError is returned when a registry has no engine for a name.
type LookupError struct {
	Name types.AlgorithmName
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no engine registered for algorithm %q", string(e.Name))
}

// Registry maps algorithm names to engines. It is built once and never
// modified, so it is safe to share across goroutines.
type Registry struct {
	engines map[types.AlgorithmName]Engine
	order   []types.AlgorithmName
}

// NewRegistry creates a registry holding all five built-in engines.
func NewRegistry() *Registry {
	r, err := NewRegistryWith(NewNaive(), NewKMP(), NewRabinKarp(), NewBoyerMoore(), NewGoCrazy())
	if err != nil {
		// Built-in engines have distinct, valid names.
		panic(err)
	}
	return r
}

// NewRegistryWith creates a registry from the given engines, in the given order.
// Returns error if an engine has an unknown or duplicate name.
func NewRegistryWith(engines ...Engine) (*Registry, error) {
	r := &Registry{
		engines: make(map[types.AlgorithmName]Engine, len(engines)),
		order:   make([]types.AlgorithmName, 0, len(engines)),
	}
	for _, e := range engines {
		if e == nil {
			return nil, fmt.Errorf("nil engine")
		}
		name := e.Name()
		if !name.Valid() {
			return nil, fmt.Errorf("engine has unknown algorithm name %q", string(name))
		}
		if _, dup := r.engines[name]; dup {
			return nil, fmt.Errorf("duplicate engine for algorithm %s", name)
		}
		r.engines[name] = e
		r.order = append(r.order, name)
	}
	return r, nil
}

// Get returns the engine registered for name.
// Returns *LookupError if there is none.
func (r *Registry) Get(name types.AlgorithmName) (Engine, error) {
	e, ok := r.engines[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return e, nil
}

// MustGet is like Get but panics for unknown names.
func (r *Registry) MustGet(name types.AlgorithmName) Engine {
	e, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Names returns the registered algorithm names in registration order.
func (r *Registry) Names() []types.AlgorithmName {
	return append([]types.AlgorithmName(nil), r.order...)
}

// Engines returns the registered engines in registration order.
func (r *Registry) Engines() []Engine {
	out := make([]Engine, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.engines[name])
	}
	return out
}

// Len returns the number of registered engines.
func (r *Registry) Len() int {
	return len(r.order)
}
