package autocomplete

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/subscription"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
	"github.com/kailas-cloud/skysearch/internal/suggest"
)

// --- Mocks ---

type mockProvider struct {
	typ    suggestion.Type
	items  []suggestion.Item
	err    error
	delay  time.Duration
	block  bool
	remote bool
	calls  atomic.Int32
}

func (m *mockProvider) Type() suggestion.Type     { return m.typ }
func (m *mockProvider) Category() filter.Category { return filter.CategoryGeneral }
func (m *mockProvider) Remote() bool              { return m.remote }

func (m *mockProvider) Query(ctx context.Context, _ string) ([]suggestion.Item, error) {
	m.calls.Add(1)
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	return m.items, m.err
}

type catalog []suggest.Provider

func (c catalog) Providers() []suggest.Provider { return c }

func item(typ suggestion.Type, label string, aliases ...string) suggestion.Item {
	return suggestion.Item{Type: typ, Label: label, Value: label, Aliases: aliases}
}

func labels(items []suggestion.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

// --- Tests ---

func TestMagic_SubjectBeatsFreeText(t *testing.T) {
	reg := suggest.NewRegistry()
	reg.MustRegister(
		suggest.NewSubjects(filter.CategorySkyAndSubjects, 0),
		suggest.NewText(filter.CategoryGeneral),
	)
	svc := New(reg, filter.NewRegistry(filter.Defaults()...), time.Second)

	got, ok, err := svc.Magic(context.Background(), "NGC 7000")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Type != suggestion.TypeSubjects || got.Label != "NGC 7000" {
		t.Errorf("got %s %q, want subjects NGC 7000", got.Type, got.Label)
	}
}

func TestMagic_SubjectAliasBeatsFreeText(t *testing.T) {
	reg := suggest.NewRegistry()
	reg.MustRegister(
		suggest.NewSubjects(filter.CategorySkyAndSubjects, 0),
		suggest.NewText(filter.CategoryGeneral),
	)
	svc := New(reg, filter.NewRegistry(filter.Defaults()...), time.Second)

	got, ok, err := svc.Magic(context.Background(), "Praesepe")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got.Type != suggestion.TypeSubjects || got.Label != "Beehive Cluster" {
		t.Errorf("Magic = %s %q, %v; want subjects Beehive Cluster", got.Type, got.Label, ok)
	}
}

func TestMagic_IndependentOfCompletionOrder(t *testing.T) {
	for run := 0; run < 5; run++ {
		slow := &mockProvider{typ: suggestion.TypeSubjects, delay: 30 * time.Millisecond,
			items: []suggestion.Item{item(suggestion.TypeSubjects, "Orion")}}
		fast := &mockProvider{typ: suggestion.TypeConstellation,
			items: []suggestion.Item{item(suggestion.TypeConstellation, "Orion", "Ori")}}
		svc := New(catalog{slow, fast}, nil, time.Second)

		got, ok, err := svc.Magic(context.Background(), "orion")
		if err != nil || !ok {
			t.Fatalf("Magic = %v, %v", ok, err)
		}
		if got.Type != suggestion.TypeSubjects {
			t.Fatalf("winner = %s, want first provider in catalog order", got.Type)
		}
	}
}

func TestMagic_MatchesAliases(t *testing.T) {
	p := &mockProvider{typ: suggestion.TypeConstellation,
		items: []suggestion.Item{item(suggestion.TypeConstellation, "Ursa Major", "UMa")}}
	svc := New(catalog{p}, nil, time.Second)

	got, ok, _ := svc.Magic(context.Background(), " u ma ")
	if !ok || got.Label != "Ursa Major" {
		t.Errorf("Magic = %+v, %v", got, ok)
	}
}

func TestMagic_ExcludesUsers(t *testing.T) {
	users := &mockProvider{typ: suggestion.TypeUsers, items: []suggestion.Item{item(suggestion.TypeUsers, "orion")}}
	svc := New(catalog{users}, nil, time.Second)

	_, ok, err := svc.Magic(context.Background(), "orion")
	if err != nil || ok {
		t.Errorf("Magic = %v, %v", ok, err)
	}
	if users.calls.Load() != 0 {
		t.Error("user lookup must not be queried")
	}
}

func TestMagic_NoMatchAndBlank(t *testing.T) {
	p := &mockProvider{typ: suggestion.TypeSubjects, items: []suggestion.Item{item(suggestion.TypeSubjects, "M 31")}}
	svc := New(catalog{p}, nil, time.Second)

	if _, ok, _ := svc.Magic(context.Background(), "m3"); ok {
		t.Error("partial query must not be an exact match")
	}
	if _, ok, _ := svc.Magic(context.Background(), "   "); ok {
		t.Error("blank query must not match")
	}
	if p.calls.Load() != 1 {
		t.Errorf("provider called %d times, want 1", p.calls.Load())
	}
}

func TestMagic_TimeoutSubstitutesEmpty(t *testing.T) {
	stuck := &mockProvider{typ: suggestion.TypeSubjects, block: true}
	text := &mockProvider{typ: suggestion.TypeText, items: []suggestion.Item{item(suggestion.TypeText, "m31")}}
	svc := New(catalog{stuck, text}, nil, 20*time.Millisecond)

	start := time.Now()
	got, ok, err := svc.Magic(context.Background(), "m31")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got.Type != suggestion.TypeText {
		t.Errorf("Magic = %+v, %v", got, ok)
	}
	if time.Since(start) > time.Second {
		t.Error("stuck provider blocked the join")
	}
}

func TestMagic_CallerCancellation(t *testing.T) {
	stuck := &mockProvider{typ: suggestion.TypeSubjects, block: true}
	svc := New(catalog{stuck}, nil, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, _, err := svc.Magic(ctx, "m31"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected caller deadline, got %v", err)
	}
}

func TestQuery_ErrorSubstitutesEmpty(t *testing.T) {
	broken := &mockProvider{typ: suggestion.TypeTelescope, err: errors.New("catalog down")}
	text := &mockProvider{typ: suggestion.TypeText, items: []suggestion.Item{item(suggestion.TypeText, "newton")}}
	svc := New(catalog{broken, text}, nil, time.Second)

	items, err := svc.Query(context.Background(), "newton")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Type != suggestion.TypeText {
		t.Errorf("items = %v", labels(items))
	}
}

func TestQuery_MergesInCatalogOrder(t *testing.T) {
	a := &mockProvider{typ: suggestion.TypeSubjects, delay: 20 * time.Millisecond,
		items: []suggestion.Item{item(suggestion.TypeSubjects, "a1"), item(suggestion.TypeSubjects, "a2")}}
	b := &mockProvider{typ: suggestion.TypeTelescopeType, items: []suggestion.Item{item(suggestion.TypeTelescopeType, "b1")}}
	c := &mockProvider{typ: suggestion.TypeText, items: []suggestion.Item{item(suggestion.TypeText, "c1")}}
	svc := New(catalog{a, b, c}, nil, time.Second)

	items, err := svc.Query(context.Background(), "x")
	if err != nil {
		t.Fatal(err)
	}
	got := labels(items)
	want := []string{"a1", "a2", "b1", "c1"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}

func TestQuery_TierAnnotatedAtMergeTime(t *testing.T) {
	p := &mockProvider{typ: suggestion.TypeBortleScale, items: []suggestion.Item{item(suggestion.TypeBortleScale, "Bortle 1")}}
	free := &mockProvider{typ: suggestion.TypeText, items: []suggestion.Item{item(suggestion.TypeText, "bortle")}}
	reg := filter.NewRegistry()
	svc := New(catalog{p, free}, reg, time.Second)

	items, _ := svc.Query(context.Background(), "bortle")
	if items[0].MinimumSubscription != "" {
		t.Errorf("tier before registration = %q", items[0].MinimumSubscription)
	}

	reg.Register(filter.Defaults())
	items, _ = svc.Query(context.Background(), "bortle")
	if items[0].MinimumSubscription != subscription.Ultimate {
		t.Errorf("tier = %q, want ULTIMATE", items[0].MinimumSubscription)
	}
	if items[1].MinimumSubscription != "" {
		t.Errorf("free facet annotated with %q", items[1].MinimumSubscription)
	}
	if p.items[0].MinimumSubscription != "" {
		t.Error("annotation leaked into provider results")
	}
}

func TestQuery_Blank(t *testing.T) {
	p := &mockProvider{typ: suggestion.TypeText}
	svc := New(catalog{p}, nil, time.Second)
	items, err := svc.Query(context.Background(), "")
	if err != nil || items != nil {
		t.Errorf("Query(\"\") = %v, %v", items, err)
	}
	if p.calls.Load() != 0 {
		t.Error("blank query must not fan out")
	}
}

func TestListProviders(t *testing.T) {
	remote := &mockProvider{typ: suggestion.TypeCamera, remote: true, items: []suggestion.Item{item(suggestion.TypeCamera, "ASI")}}
	local := &mockProvider{typ: suggestion.TypeText}
	svc := New(catalog{remote, local}, nil, 0)

	bs := svc.ListProviders("asi")
	if len(bs) != 2 || bs[0].Type != suggestion.TypeCamera || !bs[0].Remote || bs[1].Remote {
		t.Fatalf("bindings = %+v", bs)
	}
	items, err := bs[0].Run(context.Background())
	if err != nil || len(items) != 1 || bs[0].Query != "asi" {
		t.Errorf("Run = %v, %v", items, err)
	}
}

func TestStream(t *testing.T) {
	remote := &mockProvider{typ: suggestion.TypeCamera, remote: true, delay: 10 * time.Millisecond,
		items: []suggestion.Item{item(suggestion.TypeCamera, "ASI")}}
	local := &mockProvider{typ: suggestion.TypeText, items: []suggestion.Item{item(suggestion.TypeText, "asi")}}
	svc := New(catalog{remote, local}, nil, time.Second)

	var updates []Update
	for u := range svc.Stream(context.Background(), "asi") {
		updates = append(updates, u)
	}
	if len(updates) != 3 {
		t.Fatalf("got %d updates, want 3", len(updates))
	}
	if !updates[0].Loading || updates[0].Type != suggestion.TypeCamera {
		t.Errorf("first update = %+v, want camera loading", updates[0])
	}

	var sawLoading bool
	for _, u := range updates {
		if u.Type != suggestion.TypeCamera {
			continue
		}
		if u.Loading {
			sawLoading = true
			continue
		}
		if !sawLoading {
			t.Error("remote items arrived before the loading update")
		}
		if len(u.Items) != 1 || u.Index != 0 {
			t.Errorf("camera update = %+v", u)
		}
	}
}

func TestStream_Blank(t *testing.T) {
	svc := New(catalog{&mockProvider{typ: suggestion.TypeText}}, nil, 0)
	if _, open := <-svc.Stream(context.Background(), " "); open {
		t.Error("blank stream should be closed immediately")
	}
}
