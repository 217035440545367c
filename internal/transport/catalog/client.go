// Package catalog is the HTTP client for the equipment and user profile lookups.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/user"
	"github.com/kailas-cloud/skysearch/internal/metrics"
)

const (
	endpointEquipment = "equipment"
	endpointUsers     = "users"
	endpointHealth    = "health"

	usersPath = "/api/v2/common/userprofile/search/"

	maxErrorBody = 4 << 10
)

// Config holds the catalog client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the catalog API.
type Client struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a catalog client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{base: base, client: hc, logger: logger}, nil
}

// Equipment returns the equipment lookup view of the client.
func (c *Client) Equipment() *EquipmentLookup {
	return &EquipmentLookup{c: c}
}

// Users returns the user lookup view of the client.
func (c *Client) Users() *UserLookup {
	return &UserLookup{c: c}
}

// HealthCheck verifies the catalog answers a minimal equipment lookup.
func (c *Client) HealthCheck(ctx context.Context) error {
	u := c.endpoint(equipmentPath(equipment.Telescope), url.Values{"limit": {"1"}})
	var page equipment.Page
	if err := c.get(ctx, endpointHealth, u, &page); err != nil {
		return fmt.Errorf("catalog health check: %w", err)
	}
	return nil
}

// EquipmentLookup finds catalog items by type.
type EquipmentLookup struct {
	c *Client
}

// Find implements suggest.EquipmentCatalog.
func (l *EquipmentLookup) Find(ctx context.Context, itemType equipment.ItemType, q equipment.FindQuery) (equipment.Page, error) {
	u := l.c.endpoint(equipmentPath(itemType), searchParams(q.Query, q.Limit))

	var page equipment.Page
	if err := l.c.get(ctx, endpointEquipment, u, &page); err != nil {
		return equipment.Page{}, fmt.Errorf("find %s: %w", itemType, err)
	}
	return page, nil
}

// UserLookup searches public user profiles.
type UserLookup struct {
	c *Client
}

// Find implements suggest.UserDirectory.
func (l *UserLookup) Find(ctx context.Context, query string, limit int) ([]user.Profile, error) {
	u := l.c.endpoint(usersPath, searchParams(query, limit))

	var profiles []user.Profile
	if err := l.c.get(ctx, endpointUsers, u, &profiles); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return profiles, nil
}

func equipmentPath(itemType equipment.ItemType) string {
	return "/api/v2/equipment/" + string(itemType) + "/"
}

func searchParams(query string, limit int) url.Values {
	v := url.Values{"q": {query}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

func (c *Client) endpoint(path string, params url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = params.Encode()
	return u.String()
}

// get performs a GET and decodes the JSON body into out.
// Every failure wraps domain.ErrCatalogUnavailable.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Debug("catalog request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return fmt.Errorf("catalog request: %v: %w", err, domain.ErrCatalogUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		return parseAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return fmt.Errorf("decode catalog response: %v: %w", err, domain.ErrCatalogUnavailable)
	}
	metrics.CatalogRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

// parseAPIError extracts the "detail" field of an error body when present.
func parseAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if detail := extractDetail(body); detail != "" {
		return fmt.Errorf("catalog API error %d: %s: %w", resp.StatusCode, detail, domain.ErrCatalogUnavailable)
	}
	return fmt.Errorf("catalog API error %d: %w", resp.StatusCode, domain.ErrCatalogUnavailable)
}

func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
