// Package searchmodel holds the structured search filter set that gets
// encoded into search URLs.
package searchmodel

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/kailas-cloud/skysearch/internal/domain"
)

// Defaults applied to every model before it is encoded.
const (
	DefaultPage     = 1
	DefaultPageSize = 100
)

// Reserved keys carried by every model.
const (
	KeyPage     = "page"
	KeyPageSize = "pageSize"
	KeyText     = "text"
)

// Model is a search: paging, free text and any number of filters.
// Filter values are kept in JSON shape (nil, bool, float64, string,
// []any, map[string]any) so that decoded and hand-built models compare equal.
type Model struct {
	Page     int
	PageSize int
	Text     *TextFilter
	Filters  map[string]any
}

// Default returns an empty model with defaults applied.
func Default(simpleMode bool) Model {
	return Model{}.WithDefaults(simpleMode)
}

// WithDefaults returns a copy with page, pageSize and text filled in when unset.
// simpleMode becomes the text default of onlySearchInTitlesAndDescriptions.
func (m Model) WithDefaults(simpleMode bool) Model {
	out := m.Clone()
	if out.Page <= 0 {
		out.Page = DefaultPage
	}
	if out.PageSize <= 0 {
		out.PageSize = DefaultPageSize
	}
	if out.Text == nil {
		out.Text = &TextFilter{
			Value:                             "",
			MatchType:                         MatchAll,
			OnlySearchInTitlesAndDescriptions: simpleMode,
		}
	}
	return out
}

// Clone returns a deep copy.
func (m Model) Clone() Model {
	out := Model{Page: m.Page, PageSize: m.PageSize}
	if m.Text != nil {
		t := *m.Text
		out.Text = &t
	}
	if m.Filters != nil {
		out.Filters = make(map[string]any, len(m.Filters))
		for k, v := range m.Filters {
			out.Filters[k] = cloneValue(v)
		}
	}
	return out
}

// Set stores v under key. Reserved keys update the typed fields; any other
// value is normalized to JSON shape.
func (m *Model) Set(key string, v any) error {
	switch key {
	case KeyPage:
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("%w: page: %w", domain.ErrInvalidModel, err)
		}
		m.Page = n
		return nil
	case KeyPageSize:
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("%w: pageSize: %w", domain.ErrInvalidModel, err)
		}
		m.PageSize = n
		return nil
	case KeyText:
		t, err := toText(v)
		if err != nil {
			return fmt.Errorf("%w: text: %w", domain.ErrInvalidModel, err)
		}
		m.Text = t
		return nil
	}

	nv, err := Normalize(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidModel, key, err)
	}
	if m.Filters == nil {
		m.Filters = make(map[string]any)
	}
	m.Filters[key] = nv
	return nil
}

// Delete removes a filter.
func (m *Model) Delete(key string) {
	delete(m.Filters, key)
}

// Value returns the raw JSON-shaped value of a filter.
func (m Model) Value(key string) (any, bool) {
	v, ok := m.Filters[key]
	return v, ok
}

// Get decodes the filter stored under key into out.
func (m Model) Get(key string, out any) (bool, error) {
	v, ok := m.Filters[key]
	if !ok {
		return false, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return true, fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Keys returns the filter keys in sorted order.
func (m Model) Keys() []string {
	return slices.Sorted(maps.Keys(m.Filters))
}

// Equal compares two models. A nil and an empty filter map are equal.
func (m Model) Equal(o Model) bool {
	if m.Page != o.Page || m.PageSize != o.PageSize {
		return false
	}
	if (m.Text == nil) != (o.Text == nil) {
		return false
	}
	if m.Text != nil && *m.Text != *o.Text {
		return false
	}
	if len(m.Filters) != len(o.Filters) {
		return false
	}
	for k, v := range m.Filters {
		ov, ok := o.Filters[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the model as one flat object.
func (m Model) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(m.Filters)+3)
	for k, v := range m.Filters {
		flat[k] = v
	}
	if m.Page != 0 {
		flat[KeyPage] = m.Page
	}
	if m.PageSize != 0 {
		flat[KeyPageSize] = m.PageSize
	}
	if m.Text != nil {
		flat[KeyText] = m.Text
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads a flat object produced by MarshalJSON.
func (m *Model) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Model{}
	for k, v := range raw {
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if err := out.Set(k, decoded); err != nil {
			return err
		}
	}
	*m = out
	return nil
}

// Normalize converts v into its JSON shape.
func Normalize(v any) (any, error) {
	switch v.(type) {
	case nil, bool, float64, string:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, err
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("not an integer: %T", v)
}

func toText(v any) (*TextFilter, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case TextFilter:
		return &t, nil
	case *TextFilter:
		if t == nil {
			return nil, nil
		}
		c := *t
		return &c, nil
	case string:
		return &TextFilter{Value: t}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tf TextFilter
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	return &tf, nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	}
	return v
}
