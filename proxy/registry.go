package proxy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agentrelay/core"
)

// Registry maps endpoint names to proxies. The host application populates it
// during setup; afterwards proxies only read from it. Chains hold a Registry
// handle instead of direct endpoint references so they can name endpoints
// that are registered after the chain itself; resolution happens lazily at
// call time.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]core.Endpoint
}

// NewRegistry creates an empty endpoint registry.
func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]core.Endpoint)}
}

// Register adds an endpoint under its own name. Names are unique within one
// registry; registering a second endpoint under an existing name is an error.
func (r *Registry) Register(e core.Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Name()
	if _, exists := r.endpoints[name]; exists {
		return fmt.Errorf("endpoint %q already registered", name)
	}
	r.endpoints[name] = e

	return nil
}

// Resolve looks up an endpoint by name. It returns an error wrapping
// core.ErrNotRegistered when the name is unknown.
func (r *Registry) Resolve(name string) (core.Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.endpoints[name]
	if !ok {
		return nil, fmt.Errorf("endpoint %q: %w", name, core.ErrNotRegistered)
	}

	return e, nil
}

// Names returns the sorted names of all registered endpoints.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
