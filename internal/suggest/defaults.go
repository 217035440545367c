package suggest

import (
	"fmt"

	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
)

// Deps are the collaborators of the default provider catalog.
type Deps struct {
	Equipment EquipmentCatalog
	Users     UserDirectory
	Humanizer Humanizer
	Remote    RemoteOptions
}

// NewDefaultRegistry registers the full provider catalog. Registration order
// is the order suggestions are merged and exact matches are searched in.
func NewDefaultRegistry(deps Deps) (*Registry, error) {
	categories := make(map[string]filter.Category)
	for _, d := range filter.Defaults() {
		categories[d.Key] = d.Category
	}
	category := func(t suggestion.Type) filter.Category { return categories[string(t)] }

	limit := deps.Remote.Limit
	enum := func(t suggestion.Type, members []Member, value ValueFunc) Provider {
		return NewEnum(EnumSpec{Type: t, Category: category(t), Members: members, Value: value}, deps.Humanizer, limit)
	}

	catalogs := []struct {
		typ        suggestion.Type
		itemType   equipment.ItemType
		exactMatch bool
	}{
		{suggestion.TypeTelescope, equipment.Telescope, true},
		{suggestion.TypeSensor, equipment.Sensor, true},
		{suggestion.TypeCamera, equipment.Camera, true},
		{suggestion.TypeMount, equipment.Mount, true},
		{suggestion.TypeFilter, equipment.Filter, false},
		{suggestion.TypeAccessory, equipment.Accessory, false},
		{suggestion.TypeSoftware, equipment.Software, false},
	}
	equip := make(map[suggestion.Type]Provider, len(catalogs))
	for _, c := range catalogs {
		p, err := NewEquipment(c.typ, category(c.typ), c.itemType, c.exactMatch, deps.Equipment, deps.Remote)
		if err != nil {
			return nil, fmt.Errorf("create %s provider: %w", c.typ, err)
		}
		equip[c.typ] = p
	}
	users, err := NewUsers(category(suggestion.TypeUsers), deps.Users, deps.Remote)
	if err != nil {
		return nil, fmt.Errorf("create users provider: %w", err)
	}

	providers := []Provider{
		NewSubjects(category(suggestion.TypeSubjects), limit),
		enum(suggestion.TypeTelescopeType, telescopeTypes, MultiSelect),
		enum(suggestion.TypeCameraType, cameraTypes, MultiSelect),
		equip[suggestion.TypeTelescope],
		equip[suggestion.TypeSensor],
		equip[suggestion.TypeCamera],
		equip[suggestion.TypeMount],
		equip[suggestion.TypeFilter],
		equip[suggestion.TypeAccessory],
		equip[suggestion.TypeSoftware],
		enum(suggestion.TypeAcquisitionMonths, months, MultiSelect),
		enum(suggestion.TypeRemoteSource, remoteSources, SingleSelect),
		enum(suggestion.TypeSubjectType, subjectTypes, SingleSelect),
		enum(suggestion.TypeColorOrMono, colorOrMono, MultiSelect),
		enum(suggestion.TypeModifiedCamera, flag("Modified camera"), nil),
		enum(suggestion.TypeAnimated, flag("Animated"), nil),
		enum(suggestion.TypeVideo, flag("Video"), nil),
		enum(suggestion.TypeAward, awards, MultiSelect),
		enum(suggestion.TypeDataSource, dataSources, SingleSelect),
		enum(suggestion.TypeMinimumData, minimumData, MultiSelect),
		enum(suggestion.TypeConstellation, withAbbreviations(constellations), SingleSelect),
		enum(suggestion.TypeBortleScale, bortleScale(), nil),
		enum(suggestion.TypeLicense, licenses, MultiSelect),
		enum(suggestion.TypeFilterTypes, filterTypes, MultiSelect),
		enum(suggestion.TypeCollaboration, flag("Collaboration"), nil),
		users,
		NewText(category(suggestion.TypeText)),
	}

	r := NewRegistry()
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
