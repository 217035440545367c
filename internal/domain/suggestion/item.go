// Package suggestion defines autocomplete items and the matching rules
// shared by every suggestion provider.
package suggestion

import (
	"strings"
	"unicode"

	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/subscription"
)

// DefaultLimit caps the number of items one provider returns.
const DefaultLimit = 15

// Type tags the provider an item came from. It equals the filter key the
// item's value merges into.
type Type string

// Item types.
const (
	TypeText              Type = filter.KeyText
	TypeSubjects          Type = filter.KeySubjects
	TypeTelescopeType     Type = filter.KeyTelescopeType
	TypeCameraType        Type = filter.KeyCameraType
	TypeTelescope         Type = filter.KeyTelescope
	TypeSensor            Type = filter.KeySensor
	TypeCamera            Type = filter.KeyCamera
	TypeMount             Type = filter.KeyMount
	TypeFilter            Type = filter.KeyFilter
	TypeAccessory         Type = filter.KeyAccessory
	TypeSoftware          Type = filter.KeySoftware
	TypeAcquisitionMonths Type = filter.KeyAcquisitionMonths
	TypeRemoteSource      Type = filter.KeyRemoteSource
	TypeSubjectType       Type = filter.KeySubjectType
	TypeColorOrMono       Type = filter.KeyColorOrMono
	TypeModifiedCamera    Type = filter.KeyModifiedCamera
	TypeAnimated          Type = filter.KeyAnimated
	TypeVideo             Type = filter.KeyVideo
	TypeAward             Type = filter.KeyAward
	TypeDataSource        Type = filter.KeyDataSource
	TypeMinimumData       Type = filter.KeyMinimumData
	TypeConstellation     Type = filter.KeyConstellation
	TypeBortleScale       Type = filter.KeyBortleScale
	TypeLicense           Type = filter.KeyLicense
	TypeFilterTypes       Type = filter.KeyFilterTypes
	TypeCollaboration     Type = filter.KeyCollaboration
	TypeUsers             Type = filter.KeyUsers
)

// Item is one autocomplete suggestion.
type Item struct {
	Type                Type              `json:"type"`
	Label               string            `json:"label"`
	Value               any               `json:"value"`
	Aliases             []string          `json:"aliases,omitempty"`
	MinimumSubscription subscription.Tier `json:"minimumSubscription,omitempty"`
}

// Normalize lower-cases s and drops all whitespace.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsExactMatch reports whether the normalized label or any normalized alias
// equals normalizedQuery.
func (i Item) IsExactMatch(normalizedQuery string) bool {
	if Normalize(i.Label) == normalizedQuery {
		return true
	}
	for _, a := range i.Aliases {
		if Normalize(a) == normalizedQuery {
			return true
		}
	}
	return false
}

// Contains reports whether normalizedQuery is a substring of the normalized
// label or, when withAliases is set, of any alias.
func (i Item) Contains(normalizedQuery string, withAliases bool) bool {
	if strings.Contains(Normalize(i.Label), normalizedQuery) {
		return true
	}
	if !withAliases {
		return false
	}
	for _, a := range i.Aliases {
		if strings.Contains(Normalize(a), normalizedQuery) {
			return true
		}
	}
	return false
}

// Locked reports whether a holder of tier cannot use the item.
func (i Item) Locked(tier subscription.Tier) bool {
	return !tier.Allows(i.MinimumSubscription)
}

// MergeInto applies the item's value to m under the item's filter key.
func (i Item) MergeInto(m *searchmodel.Model) error {
	return m.Set(string(i.Type), i.Value)
}

// Clone copies the item slice so cached results are never shared with callers.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
