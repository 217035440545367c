package suggestion

import (
	"testing"

	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/subscription"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"M 31", "m31"},
		{"  NGC\t7000 ", "ngc7000"},
		{"Sh2-155", "sh2-155"},
		{"Ångström  Nebula", "ångströmnebula"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsExactMatch(t *testing.T) {
	item := Item{Label: "North America Nebula", Aliases: []string{"NGC 7000", "Caldwell 20"}}

	if !item.IsExactMatch(Normalize("north america nebula")) {
		t.Error("label should match")
	}
	if !item.IsExactMatch(Normalize("ngc7000")) {
		t.Error("alias should match")
	}
	if item.IsExactMatch(Normalize("NGC 700")) {
		t.Error("prefix must not match exactly")
	}
}

func TestContains(t *testing.T) {
	item := Item{Label: "Orion", Aliases: []string{"Ori"}}
	if !item.Contains("rio", false) {
		t.Error("label substring should match")
	}
	if item.Contains("ori ", false) {
		t.Error("query must be normalized by the caller")
	}
	item.Label = "Andromeda"
	if item.Contains("ori", false) {
		t.Error("alias ignored without withAliases")
	}
	if !item.Contains("ori", true) {
		t.Error("alias should match with withAliases")
	}
}

func TestLocked(t *testing.T) {
	item := Item{MinimumSubscription: subscription.Premium}
	if !item.Locked(subscription.Lite) {
		t.Error("lite should be locked out of premium item")
	}
	if item.Locked(subscription.Ultimate) {
		t.Error("ultimate should not be locked")
	}
	if (Item{}).Locked(subscription.Free) {
		t.Error("ungated item should never be locked")
	}
}

func TestMergeInto(t *testing.T) {
	var m searchmodel.Model
	item := Item{
		Type:  TypeTelescopeType,
		Label: "Refractor: apochromatic",
		Value: searchmodel.MatchValue{Value: []string{"REFRACTOR_APOCHROMATIC"}},
	}
	if err := item.MergeInto(&m); err != nil {
		t.Fatal(err)
	}
	var mv searchmodel.MatchValue
	found, err := m.Get(string(TypeTelescopeType), &mv)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	vals, ok := mv.Value.([]any)
	if !ok || len(vals) != 1 || vals[0] != "REFRACTOR_APOCHROMATIC" {
		t.Errorf("unexpected merged value %#v", mv.Value)
	}

	text := Item{Type: TypeText, Value: searchmodel.TextFilter{Value: "m 31", MatchType: searchmodel.MatchAll}}
	if err := text.MergeInto(&m); err != nil {
		t.Fatal(err)
	}
	if m.Text == nil || m.Text.Value != "m 31" {
		t.Errorf("text not merged: %+v", m.Text)
	}
}

func TestClone(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("nil stays nil")
	}
	in := []Item{{Label: "a"}}
	out := Clone(in)
	out[0].Label = "b"
	if in[0].Label != "a" {
		t.Error("clone shares backing array")
	}
}
