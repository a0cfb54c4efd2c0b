package synth

import (
	"fmt"
	"sort"
	"sync"
)

// GeneratorFactory builds a domain generator from run parameters.
type GeneratorFactory func(p Params) (Generator, error)

// Registry resolves domain names to generator factories.
type Registry interface {
	// Create instantiates the named domain's generator.
	Create(domainName string, p Params) (Generator, error)
	// Domains returns the registered domain names, sorted.
	Domains() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]GeneratorFactory
}

// NewRegistry wraps a factory table. The map is copied, so later caller
// mutations do not leak in.
func NewRegistry(factories map[string]GeneratorFactory) Registry {
	copied := make(map[string]GeneratorFactory, len(factories))
	for name, factory := range factories {
		copied[name] = factory
	}
	return &registry{factories: copied}
}

func (r *registry) Create(domainName string, p Params) (Generator, error) {
	r.mu.RLock()
	factory, ok := r.factories[domainName]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, fmt.Errorf("domain %q is not registered, supported domains: %v",
			domainName, r.Domains())
	}
	return factory(p)
}

func (r *registry) Domains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name, factory := range r.factories {
		if factory == nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
