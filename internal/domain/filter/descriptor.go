// Package filter describes the search facets a SearchModel can carry.
package filter

import "github.com/kailas-cloud/skysearch/internal/domain/subscription"

// Category groups filters for presentation and gating.
type Category string

// Filter categories.
const (
	CategoryGeneral        Category = "GENERAL"
	CategorySkyAndSubjects Category = "SKY_AND_SUBJECTS"
	CategoryEquipment      Category = "EQUIPMENT"
	CategoryAcquisition    Category = "ACQUISITION"
	CategoryDates          Category = "DATES"
	CategorySources        Category = "SOURCES"
	CategoryUsers          Category = "USERS"
)

// Shape is the structure of a filter value inside a SearchModel.
type Shape string

// Value shapes.
const (
	ShapeScalar     Shape = "SCALAR"
	ShapeEnum       Shape = "ENUM"
	ShapeIDNameList Shape = "ID_NAME_LIST"
	ShapeRange      Shape = "RANGE"
	ShapeMatchValue Shape = "MATCH_VALUE"
	ShapeText       Shape = "TEXT"
)

// Descriptor is the registered metadata of one filter key.
type Descriptor struct {
	Key                 string            `json:"key"`
	Category            Category          `json:"category"`
	MinimumSubscription subscription.Tier `json:"minimumSubscription"`
	AutoCompleteOnly    bool              `json:"autoCompleteOnly"`
	Shape               Shape             `json:"shape"`
}

// IsGated reports whether the filter requires a paid plan.
func (d Descriptor) IsGated() bool {
	return d.MinimumSubscription.IsPaid()
}
