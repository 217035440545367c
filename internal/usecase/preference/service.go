package preference

import (
	"context"
	"sync"
	"time"

	"github.com/kailas-cloud/skysearch/internal/cache"
	"github.com/kailas-cloud/skysearch/internal/domain"
	"github.com/kailas-cloud/skysearch/internal/metrics"
)

// Service hands out per-client simple-mode sessions. Sessions are kept in a
// bounded cache; an evicted client is reloaded from the store on next use.
// A session with subscribers is pinned outside the cache until the last
// subscriber leaves, so every caller shares the instance that broadcasts.
type Service struct {
	store    Store
	ttl      time.Duration
	sessions *cache.LRU[*SimpleMode]

	mu      sync.Mutex
	watched map[string]*watchedSession
}

type watchedSession struct {
	mode     *SimpleMode
	watchers int
}

// New creates a preference service holding at most capacity sessions.
func New(store Store, ttl time.Duration, capacity int) (*Service, error) {
	sessions, err := cache.New[*SimpleMode]("sessions", capacity, metrics.PreferenceSessionsTotal)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		ttl:      ttl,
		sessions: sessions,
		watched:  make(map[string]*watchedSession),
	}, nil
}

// For returns the session of clientID, loading it on first use.
func (s *Service) For(ctx context.Context, clientID string) (*SimpleMode, error) {
	if clientID == "" {
		return nil, domain.ErrMissingClientID
	}
	if m := s.pinned(clientID); m != nil {
		return m, nil
	}
	m, err := s.sessions.GetOrLoad(ctx, clientID, func(ctx context.Context) (*SimpleMode, error) {
		m, err := LoadSimpleMode(ctx, s.store, clientID, s.ttl)
		if err != nil {
			return nil, err
		}
		m.onWatch = s.watch
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	// A subscriber may have pinned the client while this load ran.
	if p := s.pinned(clientID); p != nil {
		return p, nil
	}
	return m, nil
}

// Sessions returns the number of live sessions.
func (s *Service) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.sessions.Len()
	for id := range s.watched {
		if _, ok := s.sessions.Peek(id); !ok {
			n++
		}
	}
	return n
}

func (s *Service) pinned(clientID string) *SimpleMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.watched[clientID]; ok {
		return w.mode
	}
	return nil
}

// watch tracks subscribers per session. When the last one leaves, the
// session goes back into the cache.
func (s *Service) watch(m *SimpleMode, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.watched[m.clientID]
	switch {
	case !ok:
		if delta < 0 {
			return
		}
		w = &watchedSession{mode: m}
		s.watched[m.clientID] = w
	case w.mode != m:
		// stale instance handed out before the pin
		return
	}
	w.watchers += delta
	if w.watchers <= 0 {
		delete(s.watched, m.clientID)
		s.sessions.Add(m.clientID, m)
	}
}
