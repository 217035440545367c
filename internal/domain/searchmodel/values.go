package searchmodel

// MatchType controls how several selected values of one filter combine.
type MatchType string

// Match types.
const (
	MatchAll   MatchType = "ALL"
	MatchAny   MatchType = "ANY"
	MatchExact MatchType = "EXACT"
)

// IsValid reports whether m is a known match type. Unset is valid.
func (m MatchType) IsValid() bool {
	switch m {
	case "", MatchAll, MatchAny, MatchExact:
		return true
	}
	return false
}

// TextFilter is the free-text part of a search.
type TextFilter struct {
	Value                             string    `json:"value"`
	MatchType                         MatchType `json:"matchType,omitempty"`
	OnlySearchInTitlesAndDescriptions bool      `json:"onlySearchInTitlesAndDescriptions"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IDName references a catalog entity.
type IDName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MatchValue is a value list with its combination rule.
type MatchValue struct {
	Value     any       `json:"value"`
	MatchType MatchType `json:"matchType,omitempty"`
}
