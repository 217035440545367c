package autocomplete

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/domain/filter"
	"github.com/kailas-cloud/skysearch/internal/domain/suggestion"
	"github.com/kailas-cloud/skysearch/internal/logger"
	"github.com/kailas-cloud/skysearch/internal/metrics"
	"github.com/kailas-cloud/skysearch/internal/suggest"
)

// Binding is one catalog entry bound to a raw query.
type Binding struct {
	Type     suggestion.Type
	Category filter.Category
	Remote   bool
	Query    string
	provider suggest.Provider
}

// Run executes the bound provider.
func (b Binding) Run(ctx context.Context) ([]suggestion.Item, error) {
	return b.provider.Query(ctx, b.Query)
}

// Update is one step of a streamed autocomplete. Remote providers first
// send a Loading update, then their items.
type Update struct {
	Index   int               `json:"index"`
	Type    suggestion.Type   `json:"type"`
	Loading bool              `json:"loading"`
	Items   []suggestion.Item `json:"items"`
}

// Service fans a query out to every provider and merges the answers.
type Service struct {
	providers ProviderCatalog
	filters   FilterLookup
	timeout   time.Duration
}

// New creates an autocomplete service. Each provider call is bounded by
// timeout; zero waits for every provider indefinitely.
func New(providers ProviderCatalog, filters FilterLookup, timeout time.Duration) *Service {
	return &Service{providers: providers, filters: filters, timeout: timeout}
}

// ListProviders returns the ordered catalog bound to rawQuery.
func (s *Service) ListProviders(rawQuery string) []Binding {
	ps := s.providers.Providers()
	out := make([]Binding, len(ps))
	for i, p := range ps {
		out[i] = Binding{
			Type:     p.Type(),
			Category: p.Category(),
			Remote:   suggest.IsRemote(p),
			Query:    rawQuery,
			provider: p,
		}
	}
	return out
}

// Query returns the suggestions of every provider, in catalog order.
func (s *Service) Query(ctx context.Context, rawQuery string) ([]suggestion.Item, error) {
	if isBlank(rawQuery) {
		return nil, nil
	}
	ps := s.providers.Providers()
	results, err := s.fanOut(ctx, ps, rawQuery)
	if err != nil {
		return nil, err
	}

	var merged []suggestion.Item
	for i, items := range results {
		merged = append(merged, s.annotate(ps[i], items)...)
	}
	return merged, nil
}

// Magic returns the first item, in catalog order, whose label or alias
// equals the query once normalized. User lookup takes no part in it.
func (s *Service) Magic(ctx context.Context, rawQuery string) (suggestion.Item, bool, error) {
	if isBlank(rawQuery) {
		return suggestion.Item{}, false, nil
	}
	var ps []suggest.Provider
	for _, p := range s.providers.Providers() {
		if p.Type() != suggestion.TypeUsers {
			ps = append(ps, p)
		}
	}

	results, err := s.fanOut(ctx, ps, rawQuery)
	if err != nil {
		return suggestion.Item{}, false, err
	}

	q := suggestion.Normalize(rawQuery)
	for i, items := range results {
		for _, item := range items {
			if item.IsExactMatch(q) {
				return s.annotate(ps[i], []suggestion.Item{item})[0], true, nil
			}
		}
	}
	return suggestion.Item{}, false, nil
}

// Stream answers provider by provider. The channel is closed once every
// provider has answered or ctx is done.
func (s *Service) Stream(ctx context.Context, rawQuery string) <-chan Update {
	ps := s.providers.Providers()
	out := make(chan Update, 2*len(ps))
	if isBlank(rawQuery) {
		close(out)
		return out
	}

	var wg sync.WaitGroup
	for i, p := range ps {
		if suggest.IsRemote(p) {
			out <- Update{Index: i, Type: p.Type(), Loading: true}
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := s.call(ctx, p, rawQuery)
			if err != nil {
				return
			}
			out <- Update{Index: i, Type: p.Type(), Items: s.annotate(p, items)}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// fanOut queries ps concurrently and returns their items by catalog index.
// Only cancellation of ctx fails the join.
func (s *Service) fanOut(ctx context.Context, ps []suggest.Provider, rawQuery string) ([][]suggestion.Item, error) {
	results := make([][]suggestion.Item, len(ps))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range ps {
		g.Go(func() error {
			items, err := s.call(gctx, p, rawQuery)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// call runs one provider. A failing or timed-out provider yields no items;
// the returned error is always the caller's context error.
func (s *Service) call(ctx context.Context, p suggest.Provider, rawQuery string) ([]suggestion.Item, error) {
	name := string(p.Type())
	log := logger.FromContext(ctx).With(zap.String("provider", name))

	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	defer cancel()

	type result struct {
		items []suggestion.Item
		err   error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		items, err := p.Query(callCtx, rawQuery)
		done <- result{items: items, err: err}
	}()

	select {
	case r := <-done:
		metrics.ProviderRequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if r.err == nil {
			metrics.ProviderRequestsTotal.WithLabelValues(name, "ok").Inc()
			return r.items, nil
		}
		if ctx.Err() != nil {
			metrics.ProviderRequestsTotal.WithLabelValues(name, "canceled").Inc()
			return nil, ctx.Err()
		}
		status := "error"
		if errors.Is(r.err, context.DeadlineExceeded) {
			status = "timeout"
		}
		metrics.ProviderRequestsTotal.WithLabelValues(name, status).Inc()
		log.Warn("suggestion provider failed", zap.String("status", status), zap.Error(r.err))
		return nil, nil
	case <-callCtx.Done():
		metrics.ProviderRequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if ctx.Err() != nil {
			metrics.ProviderRequestsTotal.WithLabelValues(name, "canceled").Inc()
			return nil, ctx.Err()
		}
		metrics.ProviderRequestsTotal.WithLabelValues(name, "timeout").Inc()
		log.Warn("suggestion provider timed out",
			zap.Duration("timeout", s.timeout),
			zap.Error(domain.ErrProviderTimeout),
		)
		return nil, nil
	}
}

// annotate stamps items with the facet's tier as registered right now.
func (s *Service) annotate(p suggest.Provider, items []suggestion.Item) []suggestion.Item {
	if len(items) == 0 || s.filters == nil {
		return items
	}
	d, ok := s.filters.LookupByKey(string(p.Type()))
	if !ok || !d.IsGated() {
		return items
	}
	out := suggestion.Clone(items)
	for i := range out {
		out[i].MinimumSubscription = d.MinimumSubscription
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
