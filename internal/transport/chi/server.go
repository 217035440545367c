package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/searchmodel"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
	"github.com/kailas-cloud/skysearch/internal/logger"
	autocompleteuc "github.com/kailas-cloud/skysearch/internal/usecase/autocomplete"
	healthuc "github.com/kailas-cloud/skysearch/internal/usecase/health"
	preferenceuc "github.com/kailas-cloud/skysearch/internal/usecase/preference"
	queryuc "github.com/kailas-cloud/skysearch/internal/usecase/query"
)

// Error codes of the JSON error body.
const (
	codeBadRequest         = "bad_request"
	codeMalformedQuery     = "malformed_query"
	codeInvalidModel       = "invalid_model"
	codeNoMatch            = "no_match"
	codeMissingClientID    = "missing_client_id"
	codeCatalogUnavailable = "catalog_unavailable"
	codeTimeout            = "timeout"
	codeInternalError      = "internal_error"
)

const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the skysearch HTTP API.
type Server struct {
	queries       *queryuc.Service
	autocomplete  *autocompleteuc.Service
	preferences   *preferenceuc.Service
	filters       *filter.Registry
	health        *healthuc.Service
	logger        *zap.Logger
	upgrader      websocket.Upgrader
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	queries *queryuc.Service,
	autocomplete *autocompleteuc.Service,
	preferences *preferenceuc.Service,
	filters *filter.Registry,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		queries:      queries,
		autocomplete: autocomplete,
		preferences:  preferences,
		filters:      filters,
		health:       health,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrMalformedQuery, http.StatusBadRequest, codeMalformedQuery),
		sentinelHandler(domain.ErrInvalidModel, http.StatusBadRequest, codeInvalidModel),
		sentinelHandler(domain.ErrMissingClientID, http.StatusBadRequest, codeMissingClientID),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusBadGateway, codeCatalogUnavailable),
		sentinelHandler(domain.ErrProviderTimeout, http.StatusGatewayTimeout, codeTimeout),
		sentinelHandler(context.DeadlineExceeded, http.StatusGatewayTimeout, codeTimeout),
	}
	return s
}

// Mount registers the API routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Get("/filters", s.ListFilters)

	r.Post("/search/encode", s.EncodeSearch)
	r.Get("/search/{token}", s.ResolveSearch)
	r.Get("/search/{token}/strict", s.DecodeSearch)

	r.Get("/autocomplete", s.Autocomplete)
	r.Get("/autocomplete/magic", s.MagicAutocomplete)
	r.Get("/autocomplete/stream", s.StreamAutocomplete)

	r.Get("/preferences/simple-mode", s.GetSimpleMode)
	r.Put("/preferences/simple-mode", s.SetSimpleMode)
	r.Delete("/preferences/simple-mode", s.ResetSimpleMode)
	r.Get("/preferences/simple-mode/watch", s.WatchSimpleMode)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type filtersResponse struct {
	Filters []filter.Descriptor `json:"filters"`
}

type encodeResponse struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}

type searchResponse struct {
	Model searchmodel.Model `json:"model"`
	Valid bool              `json:"valid"`
}

type itemsResponse struct {
	Items []suggestion.Item `json:"items"`
}

type magicResponse struct {
	Item suggestion.Item `json:"item"`
}

type simpleModeRequest struct {
	SimpleMode *bool `json:"simpleMode"`
}

type simpleModeResponse struct {
	ClientID   string `json:"clientId"`
	SimpleMode bool   `json:"simpleMode"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// ListFilters handles GET /filters.
func (s *Server) ListFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, filtersResponse{Filters: s.filters.Selectable()})
}

// EncodeSearch handles POST /search/encode.
func (s *Server) EncodeSearch(w http.ResponseWriter, r *http.Request) {
	var m searchmodel.Model
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid search model: "+err.Error())
		return
	}

	token, err := s.queries.Encode(r.Context(), ClientIDFromContext(r.Context()), m)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeResponse{Token: token, Path: "/search/" + token})
}

// ResolveSearch handles GET /search/{token}. Malformed tokens resolve to the
// default model with valid=false.
func (s *Server) ResolveSearch(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	m, valid := s.queries.Resolve(r.Context(), ClientIDFromContext(r.Context()), token)
	writeJSON(w, http.StatusOK, searchResponse{Model: m, Valid: valid})
}

// DecodeSearch handles GET /search/{token}/strict.
func (s *Server) DecodeSearch(w http.ResponseWriter, r *http.Request) {
	m, err := s.queries.Decode(chi.URLParam(r, "token"))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Model: m, Valid: true})
}

// Autocomplete handles GET /autocomplete?q=.
func (s *Server) Autocomplete(w http.ResponseWriter, r *http.Request) {
	items, err := s.autocomplete.Query(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	if items == nil {
		items = []suggestion.Item{}
	}
	writeJSON(w, http.StatusOK, itemsResponse{Items: items})
}

// MagicAutocomplete handles GET /autocomplete/magic?q=.
func (s *Server) MagicAutocomplete(w http.ResponseWriter, r *http.Request) {
	item, ok, err := s.autocomplete.Magic(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, codeNoMatch, "no exact match")
		return
	}
	writeJSON(w, http.StatusOK, magicResponse{Item: item})
}

// GetSimpleMode handles GET /preferences/simple-mode.
func (s *Server) GetSimpleMode(w http.ResponseWriter, r *http.Request) {
	clientID := ClientIDFromContext(r.Context())
	pref, err := s.preferences.For(r.Context(), clientID)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, simpleModeResponse{ClientID: clientID, SimpleMode: pref.IsSimpleMode()})
}

// SetSimpleMode handles PUT /preferences/simple-mode.
func (s *Server) SetSimpleMode(w http.ResponseWriter, r *http.Request) {
	var req simpleModeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}
	if req.SimpleMode == nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "simpleMode is required")
		return
	}

	clientID := ClientIDFromContext(r.Context())
	pref, err := s.preferences.For(r.Context(), clientID)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	if err := pref.Set(r.Context(), *req.SimpleMode); err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, simpleModeResponse{ClientID: clientID, SimpleMode: pref.IsSimpleMode()})
}

// ResetSimpleMode handles DELETE /preferences/simple-mode.
func (s *Server) ResetSimpleMode(w http.ResponseWriter, r *http.Request) {
	pref, err := s.preferences.For(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	if err := pref.Reset(r.Context()); err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrMalformedQuery,
		domain.ErrInvalidModel,
		domain.ErrMissingClientID,
		domain.ErrCatalogUnavailable,
		domain.ErrProviderTimeout,
		context.DeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := s.requestLogger(ctx)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// requestLogger prefers the per-request logger placed in ctx by middleware.
func (s *Server) requestLogger(ctx context.Context) *zap.Logger {
	if l := logger.FromContext(ctx); l.Core().Enabled(zap.ErrorLevel) {
		return l
	}
	return s.logger
}
