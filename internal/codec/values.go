package codec

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
)

func (c *Codec) flatten(m searchmodel.Model) (url.Values, error) {
	values := make(url.Values, len(m.Filters)+3)
	values.Set(searchmodel.KeyPage, strconv.Itoa(m.Page))
	values.Set(searchmodel.KeyPageSize, strconv.Itoa(m.PageSize))

	text, err := json.Marshal(m.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: text: %w", domain.ErrInvalidModel, err)
	}
	values.Set(searchmodel.KeyText, string(text))

	for key, v := range m.Filters {
		if s, ok := v.(string); ok && !c.registered(key) {
			values.Set(key, s)
			continue
		}
		s, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidModel, key, err)
		}
		values.Set(key, s)
	}
	return values, nil
}

// encodeValue writes plain strings verbatim and everything else as JSON.
// Strings that would be mistaken for JSON on the way back are quoted.
func encodeValue(v any) (string, error) {
	if s, ok := v.(string); ok && !looksLikeJSON(s) {
		return s, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Codec) unflatten(query string) (searchmodel.Model, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return searchmodel.Model{}, domain.NewMalformedQuery("query string", err)
	}

	var m searchmodel.Model
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		raw := vs[0]

		switch key {
		case searchmodel.KeyPage, searchmodel.KeyPageSize:
			n, err := parseInt(raw)
			if err != nil {
				return searchmodel.Model{}, domain.NewMalformedQuery(key, err)
			}
			if key == searchmodel.KeyPage {
				m.Page = n
			} else {
				m.PageSize = n
			}
		case searchmodel.KeyText:
			m.Text = decodeText(raw)
		default:
			if m.Filters == nil {
				m.Filters = make(map[string]any, len(values))
			}
			if c.registered(key) {
				m.Filters[key] = decodeValue(raw)
			} else {
				m.Filters[key] = raw
			}
		}
	}
	return c.ApplyDefaults(m), nil
}

// decodeValue parses JSON-looking values and keeps the raw string when the
// parse fails; some stored tokens predate the JSON encoding.
func decodeValue(raw string) any {
	if !looksLikeJSON(raw) {
		return raw
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func decodeText(raw string) *searchmodel.TextFilter {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		var t searchmodel.TextFilter
		if err := json.Unmarshal([]byte(raw), &t); err == nil {
			return &t
		}
	}
	if raw == "null" {
		return nil
	}
	return &searchmodel.TextFilter{Value: raw}
}

func looksLikeJSON(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	switch c := s[0]; {
	case c == '{', c == '[', c == '"', c == '-':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}
