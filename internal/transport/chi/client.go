package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/logger"
)

const (
	// ClientIDHeader carries the client identity on requests and responses.
	ClientIDHeader = "X-Client-ID"
	clientCookie   = "skysearch_client"
	maxClientIDLen = 128
)

type clientIDKey struct{}

// exemptPaths never receive a client identity.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// ContextWithClientID stores the client identity in the context.
func ContextWithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFromContext returns the client identity, or "" when there is none.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}

// ClientIDMiddleware resolves the client identity from the X-Client-ID header
// or the session cookie. Clients without one are issued a new id, returned
// in both the header and the cookie; the cookie lives for cookieTTL.
func ClientIDMiddleware(cookieTTL time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			id := r.Header.Get(ClientIDHeader)
			if id == "" {
				if c, err := r.Cookie(clientCookie); err == nil {
					id = c.Value
				}
			}
			if id != "" && !validClientID(id) {
				writeError(w, http.StatusBadRequest, codeBadRequest, "invalid client id")
				return
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     clientCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(ClientIDHeader, id)

			ctx := logger.With(ContextWithClientID(r.Context(), id), zap.String("client_id", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validClientID accepts short ids made of letters, digits, '-', '_' and '.'.
func validClientID(id string) bool {
	if len(id) > maxClientIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
