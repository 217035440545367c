// Package suggest implements the autocomplete suggestion providers: one per
// search facet, each answering a raw query with a list of items.
package suggest

import (
	"context"
	"fmt"
	"sync"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
	"github.com/kailas-cloud/skysearch/internal/domain/user"
)

// Provider answers autocomplete queries for one facet.
// Implementations must be safe for concurrent use.
type Provider interface {
	Type() suggestion.Type
	Category() filter.Category
	Query(ctx context.Context, rawQuery string) ([]suggestion.Item, error)
}

// Remote is implemented by providers backed by an external lookup.
type Remote interface {
	Remote() bool
}

// IsRemote reports whether p calls out to a collaborator.
func IsRemote(p Provider) bool {
	r, ok := p.(Remote)
	return ok && r.Remote()
}

// EquipmentCatalog is the consumer interface for the equipment lookup.
type EquipmentCatalog interface {
	Find(ctx context.Context, itemType equipment.ItemType, q equipment.FindQuery) (equipment.Page, error)
}

// UserDirectory is the consumer interface for the user profile lookup.
type UserDirectory interface {
	Find(ctx context.Context, query string, limit int) ([]user.Profile, error)
}

// Humanizer turns an enum member into a display label.
type Humanizer interface {
	Humanize(value string) string
}

// Registry is the ordered provider catalog. Order is the registration order.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	byType    map[suggestion.Type]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[suggestion.Type]Provider)}
}

// Register appends p to the catalog.
func (r *Registry) Register(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byType[p.Type()]; dup {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateProvider, p.Type())
	}
	r.byType[p.Type()] = p
	r.providers = append(r.providers, p)
	return nil
}

// MustRegister registers every provider and panics on a duplicate.
func (r *Registry) MustRegister(ps ...Provider) {
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
}

// Providers returns the catalog in registration order.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Get returns the provider registered for t.
func (r *Registry) Get(t suggestion.Type) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byType[t]
	return p, ok
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
