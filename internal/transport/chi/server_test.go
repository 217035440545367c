package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/codec"
	"github.com/kailas-cloud/skysearch/internal/db/memory"
	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/suggest"
	autocompleteuc "github.com/kailas-cloud/skysearch/internal/usecase/autocomplete"
	healthuc "github.com/kailas-cloud/skysearch/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/skysearch/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/skysearch/internal/usecase/query"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockCatalogChecker struct {
	err error
}

func (m *mockCatalogChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Helpers ---

type testEnv struct {
	router chi.Router
	prefs  *preferenceuc.Service
	store  *memory.Store
}

func newTestEnv(t *testing.T, withClientIDs bool, providers ...suggest.Provider) *testEnv {
	t.Helper()

	filters := filter.NewRegistry(filter.Defaults()...)
	c, err := codec.New(filters, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)

	store := memory.NewStore()
	prefs, err := preferenceuc.New(store, time.Hour, 16)
	if err != nil {
		t.Fatal(err)
	}

	if len(providers) == 0 {
		providers = []suggest.Provider{
			suggest.NewSubjects(filter.CategorySkyAndSubjects, 0),
			suggest.NewText(filter.CategoryGeneral),
		}
	}
	reg := suggest.NewRegistry()
	reg.MustRegister(providers...)

	srv := NewServer(
		queryuc.New(c, prefs),
		autocompleteuc.New(reg, filters, time.Second),
		prefs,
		filters,
		healthuc.New(&mockPinger{}, &mockCatalogChecker{}),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	if withClientIDs {
		r.Use(ClientIDMiddleware(time.Hour))
	}
	srv.Mount(r)
	return &testEnv{router: r, prefs: prefs, store: store}
}

func (e *testEnv) do(t *testing.T, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
}

func expectError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, status, rr.Body.String())
	}
	var resp errorResponse
	decodeBody(t, rr, &resp)
	if resp.Code != code {
		t.Errorf("code = %q, want %q", resp.Code, code)
	}
}

var client1 = map[string]string{ClientIDHeader: "client-1"}

// --- Tests ---

func TestHealthCheck(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp healthResponse
	decodeBody(t, rr, &resp)
	if resp.Status != "ok" || resp.Checks["database"] != "ok" || resp.Checks["catalog"] != "ok" {
		t.Errorf("unexpected health: %+v", resp)
	}
	if rr.Header().Get(ClientIDHeader) != "" {
		t.Error("health route should not issue a client id")
	}
}

func TestHealthCheck_Degraded(t *testing.T) {
	filters := filter.NewRegistry(filter.Defaults()...)
	srv := NewServer(nil, nil, nil, filters,
		healthuc.New(&mockPinger{}, &mockCatalogChecker{err: errors.New("down")}), zap.NewNop())
	r := chi.NewRouter()
	srv.Mount(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var resp healthResponse
	decodeBody(t, rr, &resp)
	if resp.Status != "degraded" || resp.Checks["catalog"] != "error" {
		t.Errorf("unexpected health: %+v", resp)
	}
}

func TestListFilters_SkipsAutocompleteOnly(t *testing.T) {
	e := newTestEnv(t, false)
	rr := e.do(t, "GET", "/filters", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp filtersResponse
	decodeBody(t, rr, &resp)
	if len(resp.Filters) == 0 {
		t.Fatal("expected filters")
	}
	for _, d := range resp.Filters {
		if d.AutoCompleteOnly {
			t.Errorf("filter %s is autocomplete-only", d.Key)
		}
	}
}

func TestEncodeThenResolve(t *testing.T) {
	e := newTestEnv(t, true)

	rr := e.do(t, "POST", "/search/encode", `{"text":{"value":"M31","matchType":"ALL"},"telescope":[{"id":7,"name":"RedCat 51"}]}`, client1)
	if rr.Code != http.StatusOK {
		t.Fatalf("encode status = %d (%s)", rr.Code, rr.Body.String())
	}
	var enc encodeResponse
	decodeBody(t, rr, &enc)
	if enc.Token == "" || enc.Path != "/search/"+enc.Token {
		t.Fatalf("unexpected encode response: %+v", enc)
	}

	rr = e.do(t, "GET", enc.Path, "", client1)
	if rr.Code != http.StatusOK {
		t.Fatalf("resolve status = %d", rr.Code)
	}
	var got struct {
		Model map[string]any `json:"model"`
		Valid bool           `json:"valid"`
	}
	decodeBody(t, rr, &got)
	if !got.Valid {
		t.Fatal("expected valid token")
	}
	if got.Model["page"] != float64(1) || got.Model["pageSize"] != float64(100) {
		t.Errorf("defaults missing: %+v", got.Model)
	}
	text, _ := got.Model["text"].(map[string]any)
	if text["value"] != "M31" {
		t.Errorf("text = %+v", text)
	}
	if _, ok := got.Model["telescope"]; !ok {
		t.Errorf("telescope filter lost: %+v", got.Model)
	}
}

func TestEncode_UsesSimpleMode(t *testing.T) {
	e := newTestEnv(t, true)
	if rr := e.do(t, "PUT", "/preferences/simple-mode", `{"simpleMode":true}`, client1); rr.Code != http.StatusOK {
		t.Fatalf("put status = %d", rr.Code)
	}

	rr := e.do(t, "POST", "/search/encode", `{}`, client1)
	var enc encodeResponse
	decodeBody(t, rr, &enc)

	rr = e.do(t, "GET", "/search/"+enc.Token+"/strict", "", client1)
	var got struct {
		Model map[string]any `json:"model"`
	}
	decodeBody(t, rr, &got)
	text, _ := got.Model["text"].(map[string]any)
	if text["onlySearchInTitlesAndDescriptions"] != true {
		t.Errorf("expected simple-mode text default, got %+v", text)
	}
}

func TestEncode_BadBody(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "POST", "/search/encode", `{not json`, client1)
	expectError(t, rr, http.StatusBadRequest, codeBadRequest)
}

func TestResolve_MalformedFallsBack(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/search/not-a-valid-token", "", client1)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got struct {
		Model map[string]any `json:"model"`
		Valid bool           `json:"valid"`
	}
	decodeBody(t, rr, &got)
	if got.Valid {
		t.Error("expected valid=false")
	}
	if got.Model["page"] != float64(1) {
		t.Errorf("expected default model, got %+v", got.Model)
	}
}

func TestDecodeStrict_Malformed(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/search/not-a-valid-token/strict", "", client1)
	expectError(t, rr, http.StatusBadRequest, codeMalformedQuery)
}

func TestAutocomplete(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/autocomplete?q=ngc+700", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Items []struct {
			Type  string `json:"type"`
			Label string `json:"label"`
		} `json:"items"`
	}
	decodeBody(t, rr, &resp)
	if len(resp.Items) < 2 {
		t.Fatalf("expected subjects and text items, got %+v", resp.Items)
	}
	if resp.Items[0].Type != "subjects" {
		t.Errorf("first item = %+v, want subjects first", resp.Items[0])
	}
	last := resp.Items[len(resp.Items)-1]
	if last.Type != "text" || last.Label != "ngc 700" {
		t.Errorf("last item = %+v, want free text", last)
	}
}

func TestAutocomplete_BlankIsEmptyList(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/autocomplete?q=+++", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != `{"items":[]}` {
		t.Errorf("body = %s", body)
	}
}

func TestMagicAutocomplete(t *testing.T) {
	e := newTestEnv(t, true)
	rr := e.do(t, "GET", "/autocomplete/magic?q=NGC+7000", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Item struct {
			Type  string `json:"type"`
			Label string `json:"label"`
		} `json:"item"`
	}
	decodeBody(t, rr, &resp)
	if resp.Item.Type != "subjects" || resp.Item.Label != "NGC 7000" {
		t.Errorf("item = %+v", resp.Item)
	}
}

func TestMagicAutocomplete_NoMatch(t *testing.T) {
	e := newTestEnv(t, true, suggest.NewSubjects(filter.CategorySkyAndSubjects, 0))
	rr := e.do(t, "GET", "/autocomplete/magic?q=xyzzy", "", nil)
	expectError(t, rr, http.StatusNotFound, codeNoMatch)
}

func TestSimpleMode_Lifecycle(t *testing.T) {
	e := newTestEnv(t, true)

	rr := e.do(t, "GET", "/preferences/simple-mode", "", client1)
	var resp simpleModeResponse
	decodeBody(t, rr, &resp)
	if resp.ClientID != "client-1" || resp.SimpleMode {
		t.Fatalf("initial = %+v", resp)
	}

	rr = e.do(t, "PUT", "/preferences/simple-mode", `{"simpleMode":true}`, client1)
	decodeBody(t, rr, &resp)
	if !resp.SimpleMode {
		t.Fatalf("after put = %+v", resp)
	}
	stored, err := e.store.Get(context.Background(), domain.KeyPrefix+"pref:simple_mode:client-1")
	if err != nil || string(stored) != "true" {
		t.Errorf("stored = %q, %v", stored, err)
	}

	rr = e.do(t, "DELETE", "/preferences/simple-mode", "", client1)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rr.Code)
	}
	rr = e.do(t, "GET", "/preferences/simple-mode", "", client1)
	decodeBody(t, rr, &resp)
	if resp.SimpleMode {
		t.Errorf("after reset = %+v", resp)
	}
}

func TestSimpleMode_PutValidation(t *testing.T) {
	e := newTestEnv(t, true)
	for _, body := range []string{`{}`, `{"simpleMode":"yes"}`, `nope`} {
		rr := e.do(t, "PUT", "/preferences/simple-mode", body, client1)
		expectError(t, rr, http.StatusBadRequest, codeBadRequest)
	}
}

func TestSimpleMode_MissingClientID(t *testing.T) {
	e := newTestEnv(t, false)
	rr := e.do(t, "GET", "/preferences/simple-mode", "", nil)
	expectError(t, rr, http.StatusBadRequest, codeMissingClientID)
}

func TestHandleDomainError_Mapping(t *testing.T) {
	srv := NewServer(nil, nil, nil, nil, nil, zap.NewNop())
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewMalformedQuery("base64", errors.New("bad")), http.StatusBadRequest, codeMalformedQuery},
		{domain.ErrInvalidModel, http.StatusBadRequest, codeInvalidModel},
		{domain.ErrCatalogUnavailable, http.StatusBadGateway, codeCatalogUnavailable},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, codeTimeout},
		{errors.New("boom"), http.StatusInternalServerError, codeInternalError},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		srv.handleDomainError(context.Background(), rr, tc.err)
		expectError(t, rr, tc.status, tc.code)
	}
}

func TestSafeDomainMessage_HidesInternals(t *testing.T) {
	err := errors.New("redis: connection refused to 10.0.0.1")
	if got := safeDomainMessage(err); got != "internal error" {
		t.Errorf("got %q", got)
	}
	wrapped := domain.NewMalformedQuery("zstd", errors.New("magic number mismatch"))
	if got := safeDomainMessage(wrapped); got != domain.ErrMalformedQuery.Error() {
		t.Errorf("got %q", got)
	}
}
