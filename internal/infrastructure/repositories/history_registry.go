package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/gitscribe/internal/domain/repositories"
)

// HistoryFactory opens a HistoryRepository for the repository at path.
type HistoryFactory func(path string) (domainRepos.HistoryRepository, error)

// HistoryRegistry manages all registered history backends.
type HistoryRegistry struct {
	backends map[string]HistoryFactory
}

// NewHistoryRegistry creates an empty history registry.
func NewHistoryRegistry() *HistoryRegistry {
	return &HistoryRegistry{
		backends: make(map[string]HistoryFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *HistoryRegistry) Register(name string, factory HistoryFactory) {
	r.backends[name] = factory
}

// Open returns a history repository from the named backend for path.
func (r *HistoryRegistry) Open(name, path string) (domainRepos.HistoryRepository, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf(
			"unknown history backend: %q (available: %s)", name, strings.Join(r.Names(), ", "),
		)
	}
	return factory(path)
}

// Names returns the registered backend names in sorted order.
func (r *HistoryRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
