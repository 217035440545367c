package suggest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
	"github.com/kailas-cloud/skysearch/internal/domain/user"
)

func newtonCatalog() *mockCatalog {
	return &mockCatalog{
		findFn: func(_ equipment.ItemType, _ equipment.FindQuery) (equipment.Page, error) {
			return equipment.Page{Count: 2, Results: []equipment.Item{
				{ID: 1, BrandName: "Sky-Watcher", Name: "Quattro 200P"},
				{ID: 2, Name: "Homemade Newton 10\""},
			}}, nil
		},
	}
}

func newTestEquipment(t *testing.T, typ suggestion.Type, exact bool, catalog EquipmentCatalog) *Equipment {
	t.Helper()
	p, err := NewEquipment(typ, filter.CategoryEquipment, equipment.ItemType(typ), exact, catalog, RemoteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestEquipment_CachesIdenticalQueries(t *testing.T) {
	catalog := newtonCatalog()
	p := newTestEquipment(t, suggestion.TypeTelescope, true, catalog)

	first, err := p.Query(context.Background(), "newton")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Query(context.Background(), "newton")
	if err != nil {
		t.Fatal(err)
	}
	if n := catalog.callCount(); n != 1 {
		t.Errorf("catalog called %d times, want 1", n)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs")
	}
	if catalog.calls[0] != (equipment.FindQuery{Query: "newton", Limit: suggestion.DefaultLimit}) {
		t.Errorf("query = %+v", catalog.calls[0])
	}
	if catalog.types[0] != equipment.Telescope {
		t.Errorf("item type = %s", catalog.types[0])
	}
}

func TestEquipment_CacheKeyIsRawQuery(t *testing.T) {
	catalog := newtonCatalog()
	p := newTestEquipment(t, suggestion.TypeTelescope, true, catalog)

	for _, q := range []string{"newton", "Newton", "newton "} {
		if _, err := p.Query(context.Background(), q); err != nil {
			t.Fatal(err)
		}
	}
	if n := catalog.callCount(); n != 3 {
		t.Errorf("catalog called %d times, want 3", n)
	}
}

func TestEquipment_OwnCachePerProvider(t *testing.T) {
	catalog := newtonCatalog()
	filterP := newTestEquipment(t, suggestion.TypeFilter, false, catalog)
	accessory := newTestEquipment(t, suggestion.TypeAccessory, false, catalog)

	fItems, _ := filterP.Query(context.Background(), "newton")
	aItems, _ := accessory.Query(context.Background(), "newton")
	if n := catalog.callCount(); n != 2 {
		t.Errorf("catalog called %d times, want 2", n)
	}
	if fItems[0].Type != suggestion.TypeFilter || aItems[0].Type != suggestion.TypeAccessory {
		t.Errorf("types = %s, %s", fItems[0].Type, aItems[0].Type)
	}
	if catalog.types[1] != equipment.Accessory {
		t.Errorf("second call went to %s", catalog.types[1])
	}
}

func TestEquipment_Items(t *testing.T) {
	p := newTestEquipment(t, suggestion.TypeTelescope, true, newtonCatalog())
	items, err := p.Query(context.Background(), "newton")
	if err != nil {
		t.Fatal(err)
	}
	if got := labelsOf(items); !reflect.DeepEqual(got, []string{"Sky-Watcher Quattro 200P", "(DIY) Homemade Newton 10\""}) {
		t.Errorf("labels = %v", got)
	}
	want := EquipmentValue{Value: []searchmodel.IDName{{ID: 1, Name: "Sky-Watcher Quattro 200P"}}, ExactMatch: true}
	if !reflect.DeepEqual(items[0].Value, want) {
		t.Errorf("value = %#v", items[0].Value)
	}

	soft := newTestEquipment(t, suggestion.TypeSoftware, false, newtonCatalog())
	items, _ = soft.Query(context.Background(), "newton")
	if items[0].Value.(EquipmentValue).ExactMatch {
		t.Error("software items are not exact-match filters")
	}
}

func TestEquipment_ResultsTruncated(t *testing.T) {
	catalog := &mockCatalog{findFn: func(_ equipment.ItemType, _ equipment.FindQuery) (equipment.Page, error) {
		results := make([]equipment.Item, 40)
		for i := range results {
			results[i] = equipment.Item{ID: i, BrandName: "ZWO", Name: "ASI"}
		}
		return equipment.Page{Count: 40, Results: results}, nil
	}}
	p := newTestEquipment(t, suggestion.TypeCamera, true, catalog)
	items, _ := p.Query(context.Background(), "asi")
	if len(items) != suggestion.DefaultLimit {
		t.Errorf("len = %d", len(items))
	}
}

func TestEquipment_ErrorNotCached(t *testing.T) {
	boom := errors.New("catalog down")
	catalog := &mockCatalog{findFn: func(_ equipment.ItemType, _ equipment.FindQuery) (equipment.Page, error) {
		return equipment.Page{}, boom
	}}
	p := newTestEquipment(t, suggestion.TypeMount, true, catalog)

	for i := 0; i < 2; i++ {
		if _, err := p.Query(context.Background(), "eq6"); !errors.Is(err, boom) {
			t.Fatalf("expected catalog error, got %v", err)
		}
	}
	if n := catalog.callCount(); n != 2 {
		t.Errorf("catalog called %d times, want 2", n)
	}
}

func TestEquipment_BlankQuery(t *testing.T) {
	catalog := newtonCatalog()
	p := newTestEquipment(t, suggestion.TypeTelescope, true, catalog)
	items, err := p.Query(context.Background(), "   ")
	if err != nil || items != nil {
		t.Errorf("blank query = %v, %v", items, err)
	}
	if catalog.callCount() != 0 {
		t.Error("blank query must not reach the catalog")
	}
}

func TestEquipment_ReturnsCopies(t *testing.T) {
	p := newTestEquipment(t, suggestion.TypeTelescope, true, newtonCatalog())
	items, _ := p.Query(context.Background(), "newton")
	items[0].Label = "mutated"
	again, _ := p.Query(context.Background(), "newton")
	if again[0].Label == "mutated" {
		t.Error("cache entry was mutated through a returned slice")
	}
}

func TestUsers(t *testing.T) {
	dir := &mockDirectory{profiles: []user.Profile{
		{ID: 7, Username: "astro_jane", RealName: "Jane Doe"},
		{ID: 8, Username: "nightowl"},
	}}
	p, err := NewUsers(filter.CategoryUsers, dir, RemoteOptions{})
	if err != nil {
		t.Fatal(err)
	}

	items, err := p.Query(context.Background(), "ja")
	if err != nil {
		t.Fatal(err)
	}
	if got := labelsOf(items); !reflect.DeepEqual(got, []string{"Jane Doe", "nightowl"}) {
		t.Errorf("labels = %v", got)
	}
	if !reflect.DeepEqual(items[0].Value, []searchmodel.IDName{{ID: 7, Name: "Jane Doe"}}) {
		t.Errorf("value = %#v", items[0].Value)
	}
	if _, err := p.Query(context.Background(), "ja"); err != nil {
		t.Fatal(err)
	}
	if dir.calls != 1 {
		t.Errorf("directory called %d times, want 1", dir.calls)
	}
	if !IsRemote(p) || p.Type() != suggestion.TypeUsers {
		t.Error("users provider should be remote and typed users")
	}
}

func TestUsers_Error(t *testing.T) {
	p, err := NewUsers(filter.CategoryUsers, &mockDirectory{err: errors.New("timeout")}, RemoteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Query(context.Background(), "x"); err == nil {
		t.Error("expected error")
	}
}
