package locale

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/logger"
	"go.uber.org/zap"
)

// Factory builds the Dataset of one locale.
type Factory func() (Dataset, error)

// Registry resolves locale identifiers to validated datasets
type Registry struct {
	factories map[string]Factory
	aliases   map[string]string
	built     map[string]Dataset
	mu        sync.RWMutex
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new locale registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		built:     make(map[string]Dataset),
	}
}

// Register registers a locale factory under id and any aliases
func (r *Registry) Register(id string, factory Factory, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range append([]string{id}, aliases...) {
		if _, exists := r.factories[name]; exists {
			return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("locale %s already registered", name))
		}
		if _, exists := r.aliases[name]; exists {
			return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("locale %s already registered", name))
		}
	}

	r.factories[id] = factory
	for _, alias := range aliases {
		r.aliases[alias] = id
	}
	// Registration happens from init functions, before the CLI configures
	// logging, so the logger is resolved per call.
	logger.Debug("locale registered",
		zap.String("component", "locale_registry"),
		zap.String("id", id),
		zap.Strings("aliases", aliases))
	return nil
}

// Get returns the dataset for id, building and validating it on first use.
func (r *Registry) Get(id string) (Dataset, error) {
	r.mu.RLock()
	if canonical, ok := r.aliases[id]; ok {
		id = canonical
	}
	ds, ok := r.built[id]
	factory, exists := r.factories[id]
	r.mu.RUnlock()

	if ok {
		return ds, nil
	}
	if !exists {
		return nil, errors.New(errors.ErrorTypeLocale, fmt.Sprintf("locale %s not found", id)).
			WithDetail("available", r.List())
	}

	ds, err := factory()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeLocale, fmt.Sprintf("failed to build locale %s", id))
	}
	if err := Validate(ds); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeLocale, fmt.Sprintf("locale %s is defective", id))
	}

	r.mu.Lock()
	if existing, ok := r.built[id]; ok {
		ds = existing
	} else {
		r.built[id] = ds
	}
	r.mu.Unlock()

	return ds, nil
}

// List returns the registered locale identifiers in sorted order, without aliases
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Aliases returns the aliases registered for id
func (r *Registry) Aliases(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for alias, canonical := range r.aliases {
		if canonical == id {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Has checks if a locale or alias is registered
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.aliases[id]; ok {
		return true
	}
	_, exists := r.factories[id]
	return exists
}

// Global registry functions

// Register registers a locale factory in the global registry
func Register(id string, factory Factory, aliases ...string) error {
	return globalRegistry.Register(id, factory, aliases...)
}

// MustRegister is Register for init functions; it panics on a duplicate id.
func MustRegister(id string, factory Factory, aliases ...string) {
	if err := Register(id, factory, aliases...); err != nil {
		panic(err)
	}
}

// Get returns a dataset from the global registry
func Get(id string) (Dataset, error) {
	return globalRegistry.Get(id)
}

// List returns the locales of the global registry
func List() []string {
	return globalRegistry.List()
}

// Aliases returns the aliases of id in the global registry
func Aliases(id string) []string {
	return globalRegistry.Aliases(id)
}

// Has checks the global registry for id
func Has(id string) bool {
	return globalRegistry.Has(id)
}
