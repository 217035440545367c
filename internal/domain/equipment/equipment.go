// Package equipment holds the contract of the external equipment catalog.
package equipment

// ItemType is a catalog section.
type ItemType string

// Catalog sections.
const (
	Telescope ItemType = "telescope"
	Sensor    ItemType = "sensor"
	Camera    ItemType = "camera"
	Mount     ItemType = "mount"
	Filter    ItemType = "filter"
	Accessory ItemType = "accessory"
	Software  ItemType = "software"
)

// Item is one catalog entry.
type Item struct {
	ID        int    `json:"id"`
	BrandName string `json:"brandName"`
	Name      string `json:"name"`
}

// DisplayName is the brand followed by the item name, or "(DIY)" for
// brandless items.
func (i Item) DisplayName() string {
	if i.BrandName == "" {
		return "(DIY) " + i.Name
	}
	return i.BrandName + " " + i.Name
}

// FindQuery narrows a catalog lookup.
type FindQuery struct {
	Query string
	Limit int
}

// Page is a paginated lookup response.
type Page struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []Item `json:"results"`
}
