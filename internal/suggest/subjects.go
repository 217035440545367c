package suggest

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
)

type subjectCatalog struct {
	prefix string
	sep    string
	last   int
}

var subjectCatalogs = []subjectCatalog{
	{prefix: "M", sep: " ", last: 110},
	{prefix: "NGC", sep: " ", last: 7840},
	{prefix: "IC", sep: " ", last: 5386},
	{prefix: "Sh2", sep: "-", last: 313},
	{prefix: "LDN", sep: " ", last: 1802},
	{prefix: "LBN", sep: " ", last: 1125},
	{prefix: "VdB", sep: " ", last: 159},
}

// commonNames are well-known objects; aliases are their catalog designations.
var commonNames = []Member{
	{Label: "Andromeda Galaxy", Aliases: []string{"M 31", "NGC 224"}},
	{Label: "Triangulum Galaxy", Aliases: []string{"M 33", "NGC 598"}},
	{Label: "Orion Nebula", Aliases: []string{"M 42", "NGC 1976"}},
	{Label: "Horsehead Nebula", Aliases: []string{"Barnard 33"}},
	{Label: "Flame Nebula", Aliases: []string{"NGC 2024"}},
	{Label: "Pleiades", Aliases: []string{"M 45", "Seven Sisters"}},
	{Label: "Crab Nebula", Aliases: []string{"M 1", "NGC 1952"}},
	{Label: "Ring Nebula", Aliases: []string{"M 57", "NGC 6720"}},
	{Label: "Dumbbell Nebula", Aliases: []string{"M 27", "NGC 6853"}},
	{Label: "Lagoon Nebula", Aliases: []string{"M 8", "NGC 6523"}},
	{Label: "Trifid Nebula", Aliases: []string{"M 20", "NGC 6514"}},
	{Label: "Eagle Nebula", Aliases: []string{"M 16", "NGC 6611"}},
	{Label: "Omega Nebula", Aliases: []string{"M 17", "NGC 6618"}},
	{Label: "Whirlpool Galaxy", Aliases: []string{"M 51", "NGC 5194"}},
	{Label: "Pinwheel Galaxy", Aliases: []string{"M 101", "NGC 5457"}},
	{Label: "Bode's Galaxy", Aliases: []string{"M 81", "NGC 3031"}},
	{Label: "Cigar Galaxy", Aliases: []string{"M 82", "NGC 3034"}},
	{Label: "Sombrero Galaxy", Aliases: []string{"M 104", "NGC 4594"}},
	{Label: "Black Eye Galaxy", Aliases: []string{"M 64", "NGC 4826"}},
	{Label: "Sunflower Galaxy", Aliases: []string{"M 63", "NGC 5055"}},
	{Label: "Leo Triplet", Aliases: []string{"M 65", "M 66", "NGC 3628"}},
	{Label: "Hercules Cluster", Aliases: []string{"M 13", "NGC 6205"}},
	{Label: "Wild Duck Cluster", Aliases: []string{"M 11", "NGC 6705"}},
	{Label: "Beehive Cluster", Aliases: []string{"M 44", "NGC 2632", "Praesepe"}},
	{Label: "Double Cluster", Aliases: []string{"NGC 869", "NGC 884"}},
	{Label: "North America Nebula", Aliases: []string{"NGC 7000"}},
	{Label: "Pelican Nebula", Aliases: []string{"IC 5070"}},
	{Label: "Veil Nebula", Aliases: []string{"NGC 6960", "NGC 6992"}},
	{Label: "Crescent Nebula", Aliases: []string{"NGC 6888"}},
	{Label: "Heart Nebula", Aliases: []string{"IC 1805"}},
	{Label: "Soul Nebula", Aliases: []string{"IC 1848"}},
	{Label: "Elephant's Trunk Nebula", Aliases: []string{"IC 1396"}},
	{Label: "California Nebula", Aliases: []string{"NGC 1499"}},
	{Label: "Rosette Nebula", Aliases: []string{"NGC 2237", "Caldwell 49"}},
	{Label: "Cone Nebula", Aliases: []string{"NGC 2264"}},
	{Label: "Jellyfish Nebula", Aliases: []string{"IC 443"}},
	{Label: "Pacman Nebula", Aliases: []string{"NGC 281"}},
	{Label: "Bubble Nebula", Aliases: []string{"NGC 7635"}},
	{Label: "Iris Nebula", Aliases: []string{"NGC 7023"}},
	{Label: "Helix Nebula", Aliases: []string{"NGC 7293"}},
	{Label: "Cat's Eye Nebula", Aliases: []string{"NGC 6543"}},
	{Label: "Owl Nebula", Aliases: []string{"M 97", "NGC 3587"}},
	{Label: "Carina Nebula", Aliases: []string{"NGC 3372"}},
	{Label: "Tarantula Nebula", Aliases: []string{"NGC 2070"}},
	{Label: "Large Magellanic Cloud", Aliases: []string{"LMC"}},
	{Label: "Small Magellanic Cloud", Aliases: []string{"SMC", "NGC 292"}},
	{Label: "Omega Centauri", Aliases: []string{"NGC 5139"}},
	{Label: "Rho Ophiuchi Cloud Complex", Aliases: []string{"IC 4604"}},
	{Label: "Witch Head Nebula", Aliases: []string{"IC 2118"}},
	{Label: "Wizard Nebula", Aliases: []string{"NGC 7380"}},
	{Label: "Pillars of Creation"},
	{Label: "Milky Way"},
	{Label: "Moon"},
	{Label: "Sun"},
	{Label: "Mercury"},
	{Label: "Venus"},
	{Label: "Mars"},
	{Label: "Jupiter"},
	{Label: "Saturn"},
	{Label: "Uranus"},
	{Label: "Neptune"},
}

type subjectEntry struct {
	label      string
	normalized string
	aliases    []string
	// normalized aliases, parallel to aliases
	aliasKeys []string
}

func (e subjectEntry) matches(q string) bool {
	if strings.Contains(e.normalized, q) {
		return true
	}
	for _, a := range e.aliasKeys {
		if strings.Contains(a, q) {
			return true
		}
	}
	return false
}

// subjectIndex is built on first use and shared by every provider instance.
var subjectIndex = sync.OnceValue(func() []subjectEntry {
	size := len(commonNames)
	for _, c := range subjectCatalogs {
		size += c.last
	}
	out := make([]subjectEntry, 0, size)
	for _, c := range subjectCatalogs {
		for n := 1; n <= c.last; n++ {
			label := c.prefix + c.sep + strconv.Itoa(n)
			out = append(out, subjectEntry{label: label, normalized: suggestion.Normalize(label)})
		}
	}
	for _, m := range commonNames {
		keys := make([]string, len(m.Aliases))
		for i, a := range m.Aliases {
			keys[i] = suggestion.Normalize(a)
		}
		out = append(out, subjectEntry{
			label:      m.Label,
			normalized: suggestion.Normalize(m.Label),
			aliases:    m.Aliases,
			aliasKeys:  keys,
		})
	}
	return out
})

// Subjects suggests deep-sky catalog designations and common object names.
type Subjects struct {
	category filter.Category
	limit    int
}

// NewSubjects creates the subjects provider.
func NewSubjects(category filter.Category, limit int) *Subjects {
	if limit <= 0 {
		limit = suggestion.DefaultLimit
	}
	return &Subjects{category: category, limit: limit}
}

// Type implements Provider.
func (s *Subjects) Type() suggestion.Type { return suggestion.TypeSubjects }

// Category implements Provider.
func (s *Subjects) Category() filter.Category { return s.category }

// Query matches the query against object labels and aliases, catalog order first.
func (s *Subjects) Query(_ context.Context, rawQuery string) ([]suggestion.Item, error) {
	q := suggestion.Normalize(rawQuery)
	if q == "" {
		return nil, nil
	}

	var items []suggestion.Item
	for _, e := range subjectIndex() {
		if !e.matches(q) {
			continue
		}
		items = append(items, suggestion.Item{
			Type:    suggestion.TypeSubjects,
			Label:   e.label,
			Value:   searchmodel.MatchValue{Value: []string{e.label}},
			Aliases: e.aliases,
		})
		if len(items) == s.limit {
			break
		}
	}
	return items, nil
}
