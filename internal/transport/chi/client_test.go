package chi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func echoClientID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ClientIDFromContext(r.Context())))
	})
}

func TestClientIDMiddleware_Header(t *testing.T) {
	handler := ClientIDMiddleware(time.Hour)(echoClientID())

	req := httptest.NewRequest("GET", "/autocomplete", http.NoBody)
	req.Header.Set(ClientIDHeader, "client-1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Body.String() != "client-1" {
		t.Errorf("client id = %q", rr.Body.String())
	}
	if rr.Header().Get(ClientIDHeader) != "client-1" {
		t.Errorf("response header = %q", rr.Header().Get(ClientIDHeader))
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("known clients should not get a new cookie")
	}
}

func TestClientIDMiddleware_Cookie(t *testing.T) {
	handler := ClientIDMiddleware(time.Hour)(echoClientID())

	req := httptest.NewRequest("GET", "/search/abc", http.NoBody)
	req.AddCookie(&http.Cookie{Name: clientCookie, Value: "from-cookie"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Body.String() != "from-cookie" {
		t.Errorf("client id = %q", rr.Body.String())
	}
}

func TestClientIDMiddleware_IssuesNewID(t *testing.T) {
	handler := ClientIDMiddleware(24 * time.Hour)(echoClientID())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/preferences/simple-mode", http.NoBody))

	id := rr.Body.String()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("issued id %q is not a uuid: %v", id, err)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != clientCookie || cookies[0].Value != id {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
	if cookies[0].MaxAge != 86400 || !cookies[0].HttpOnly {
		t.Errorf("cookie = %+v", cookies[0])
	}
}

func TestClientIDMiddleware_InvalidID(t *testing.T) {
	handler := ClientIDMiddleware(time.Hour)(echoClientID())

	for _, id := range []string{"has space", "semi;colon", strings.Repeat("a", maxClientIDLen+1)} {
		req := httptest.NewRequest("GET", "/autocomplete", http.NoBody)
		req.Header.Set(ClientIDHeader, id)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, rr.Code)
		}
	}
}

func TestClientIDMiddleware_ExemptPaths(t *testing.T) {
	handler := ClientIDMiddleware(time.Hour)(echoClientID())

	for _, path := range []string{"/health", "/metrics"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
		if rr.Body.String() != "" || len(rr.Result().Cookies()) != 0 {
			t.Errorf("%s should bypass client ids", path)
		}
	}
}
