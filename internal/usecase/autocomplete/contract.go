package autocomplete

import (
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/suggest"
)

// ProviderCatalog is the ordered set of suggestion providers.
type ProviderCatalog interface {
	Providers() []suggest.Provider
}

// FilterLookup resolves the subscription tier of a facet at merge time.
type FilterLookup interface {
	LookupByKey(key string) (filter.Descriptor, bool)
}
