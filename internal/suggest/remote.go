package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/skysearch/internal/cache"
	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
)

// EquipmentValue is merged into a model when an equipment item is picked.
type EquipmentValue struct {
	Value      []searchmodel.IDName `json:"value"`
	ExactMatch bool                 `json:"exactMatch"`
}

// RemoteOptions tune a catalog-backed provider.
type RemoteOptions struct {
	Limit         int
	CacheCapacity int
	// CacheTotal counts hits and misses, labels "cache" and "result". May be nil.
	CacheTotal *prometheus.CounterVec
}

func (o RemoteOptions) withDefaults() RemoteOptions {
	if o.Limit <= 0 {
		o.Limit = suggestion.DefaultLimit
	}
	if o.CacheCapacity <= 0 {
		o.CacheCapacity = 500
	}
	return o
}

// Equipment suggests items of one equipment catalog section.
// Results are cached per exact raw query.
type Equipment struct {
	typ        suggestion.Type
	category   filter.Category
	itemType   equipment.ItemType
	exactMatch bool
	catalog    EquipmentCatalog
	cache      *cache.LRU[[]suggestion.Item]
	limit      int
}

// NewEquipment creates an equipment provider with its own cache.
func NewEquipment(
	typ suggestion.Type,
	category filter.Category,
	itemType equipment.ItemType,
	exactMatch bool,
	catalog EquipmentCatalog,
	opts RemoteOptions,
) (*Equipment, error) {
	opts = opts.withDefaults()
	c, err := cache.New[[]suggestion.Item](string(typ), opts.CacheCapacity, opts.CacheTotal)
	if err != nil {
		return nil, err
	}
	return &Equipment{
		typ:        typ,
		category:   category,
		itemType:   itemType,
		exactMatch: exactMatch,
		catalog:    catalog,
		cache:      c,
		limit:      opts.Limit,
	}, nil
}

// Type implements Provider.
func (e *Equipment) Type() suggestion.Type { return e.typ }

// Category implements Provider.
func (e *Equipment) Category() filter.Category { return e.category }

// Remote implements Remote.
func (e *Equipment) Remote() bool { return true }

// Query looks the raw query up in the catalog. Blank queries make no call.
func (e *Equipment) Query(ctx context.Context, rawQuery string) ([]suggestion.Item, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return nil, nil
	}
	items, err := e.cache.GetOrLoad(ctx, rawQuery, func(ctx context.Context) ([]suggestion.Item, error) {
		page, err := e.catalog.Find(ctx, e.itemType, equipment.FindQuery{Query: rawQuery, Limit: e.limit})
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", e.itemType, err)
		}
		return e.items(page.Results), nil
	})
	if err != nil {
		return nil, err
	}
	return suggestion.Clone(items), nil
}

func (e *Equipment) items(results []equipment.Item) []suggestion.Item {
	if len(results) > e.limit {
		results = results[:e.limit]
	}
	items := make([]suggestion.Item, 0, len(results))
	for _, r := range results {
		label := r.DisplayName()
		items = append(items, suggestion.Item{
			Type:  e.typ,
			Label: label,
			Value: EquipmentValue{
				Value:      []searchmodel.IDName{{ID: r.ID, Name: label}},
				ExactMatch: e.exactMatch,
			},
		})
	}
	return items
}

// Users suggests user profiles.
type Users struct {
	category  filter.Category
	directory UserDirectory
	cache     *cache.LRU[[]suggestion.Item]
	limit     int
}

// NewUsers creates a user lookup provider with its own cache.
func NewUsers(category filter.Category, directory UserDirectory, opts RemoteOptions) (*Users, error) {
	opts = opts.withDefaults()
	c, err := cache.New[[]suggestion.Item](string(suggestion.TypeUsers), opts.CacheCapacity, opts.CacheTotal)
	if err != nil {
		return nil, err
	}
	return &Users{category: category, directory: directory, cache: c, limit: opts.Limit}, nil
}

// Type implements Provider.
func (u *Users) Type() suggestion.Type { return suggestion.TypeUsers }

// Category implements Provider.
func (u *Users) Category() filter.Category { return u.category }

// Remote implements Remote.
func (u *Users) Remote() bool { return true }

// Query looks the raw query up in the user directory.
func (u *Users) Query(ctx context.Context, rawQuery string) ([]suggestion.Item, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return nil, nil
	}
	items, err := u.cache.GetOrLoad(ctx, rawQuery, func(ctx context.Context) ([]suggestion.Item, error) {
		profiles, err := u.directory.Find(ctx, rawQuery, u.limit)
		if err != nil {
			return nil, fmt.Errorf("find users: %w", err)
		}
		if len(profiles) > u.limit {
			profiles = profiles[:u.limit]
		}
		items := make([]suggestion.Item, 0, len(profiles))
		for _, p := range profiles {
			name := p.DisplayName()
			items = append(items, suggestion.Item{
				Type:  suggestion.TypeUsers,
				Label: name,
				Value: []searchmodel.IDName{{ID: p.ID, Name: name}},
			})
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return suggestion.Clone(items), nil
}
