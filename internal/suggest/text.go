package suggest

import (
	"context"
	"strings"
	"unicode"

	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
)

// Text always offers the raw query itself as a free-text search.
type Text struct {
	category filter.Category
}

// NewText creates the free-text provider.
func NewText(category filter.Category) *Text {
	return &Text{category: category}
}

// Type implements Provider.
func (t *Text) Type() suggestion.Type { return suggestion.TypeText }

// Category implements Provider.
func (t *Text) Category() filter.Category { return t.category }

// Query returns exactly one item wrapping rawQuery verbatim. Multi-word
// queries require all words to match.
func (t *Text) Query(_ context.Context, rawQuery string) ([]suggestion.Item, error) {
	value := searchmodel.TextFilter{Value: rawQuery}
	if strings.IndexFunc(rawQuery, unicode.IsSpace) >= 0 {
		value.MatchType = searchmodel.MatchAll
	}
	return []suggestion.Item{{
		Type:  suggestion.TypeText,
		Label: rawQuery,
		Value: value,
	}}, nil
}
