package suggest

import (
	"context"

	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
)

// Member is one enumerated value of a local vocabulary.
type Member struct {
	// Key is the wire value; it is humanized when Label is empty.
	Key     string
	Label   string
	Aliases []string
	// Payload overrides the value built by the vocabulary's ValueFunc.
	Payload any
}

// ValueFunc builds the filter value merged into a model for a member.
type ValueFunc func(m Member) any

// MultiSelect wraps the member in a one-element MatchValue list.
func MultiSelect(m Member) any {
	return searchmodel.MatchValue{Value: []string{m.Key}}
}

// SingleSelect uses the member key as the filter value.
func SingleSelect(m Member) any {
	return m.Key
}

// Enum suggests members of a fixed vocabulary.
type Enum struct {
	typ       suggestion.Type
	category  filter.Category
	members   []Member
	value     ValueFunc
	humanizer Humanizer
	limit     int
}

// EnumSpec configures an Enum provider.
type EnumSpec struct {
	Type     suggestion.Type
	Category filter.Category
	Members  []Member
	Value    ValueFunc
}

// NewEnum creates a vocabulary provider. A nil humanizer leaves keys as labels.
func NewEnum(spec EnumSpec, h Humanizer, limit int) *Enum {
	if spec.Value == nil {
		spec.Value = SingleSelect
	}
	if limit <= 0 {
		limit = suggestion.DefaultLimit
	}
	return &Enum{
		typ:       spec.Type,
		category:  spec.Category,
		members:   spec.Members,
		value:     spec.Value,
		humanizer: h,
		limit:     limit,
	}
}

// Type implements Provider.
func (e *Enum) Type() suggestion.Type { return e.typ }

// Category implements Provider.
func (e *Enum) Category() filter.Category { return e.category }

// Query returns the members whose label or alias contains the query,
// ignoring case and whitespace, in vocabulary order.
func (e *Enum) Query(_ context.Context, rawQuery string) ([]suggestion.Item, error) {
	q := suggestion.Normalize(rawQuery)
	if q == "" {
		return nil, nil
	}

	var items []suggestion.Item
	for _, m := range e.members {
		item := e.item(m)
		if !item.Contains(q, true) {
			continue
		}
		items = append(items, item)
		if len(items) == e.limit {
			break
		}
	}
	return items, nil
}

func (e *Enum) item(m Member) suggestion.Item {
	label := m.Label
	if label == "" {
		label = e.humanize(m.Key)
	}
	value := m.Payload
	if value == nil {
		value = e.value(m)
	}
	return suggestion.Item{
		Type:    e.typ,
		Label:   label,
		Value:   value,
		Aliases: m.Aliases,
	}
}

func (e *Enum) humanize(key string) string {
	if e.humanizer == nil {
		return key
	}
	return e.humanizer.Humanize(key)
}

// keys builds members from bare wire values.
func keys(values ...string) []Member {
	out := make([]Member, len(values))
	for i, v := range values {
		out[i] = Member{Key: v}
	}
	return out
}

// flag builds the yes/no members of a boolean facet.
func flag(title string) []Member {
	return []Member{
		{Key: "true", Label: title + ": yes", Payload: true},
		{Key: "false", Label: title + ": no", Payload: false},
	}
}
