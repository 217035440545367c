package preference

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/kailas-cloud/skysearch/internal/db"
	"github.com/kailas-cloud/skysearch/internal/domain"
)

var simpleModeKeyPrefix = domain.KeyPrefix + "pref:simple_mode:"

// SimpleMode is one client's simple-mode flag. The stored value is read
// once on load; later changes go through Set and are broadcast to
// subscribers.
type SimpleMode struct {
	clientID string
	key      string
	store    Store
	ttl      time.Duration
	// onWatch is told about every subscribe (+1) and unsubscribe (-1).
	onWatch func(m *SimpleMode, delta int)

	// writeMu orders store writes with their broadcasts.
	writeMu sync.Mutex

	mu     sync.RWMutex
	value  bool
	subs   map[uint64]chan bool
	nextID uint64
}

// LoadSimpleMode reads the client's flag. A missing key reads as false.
func LoadSimpleMode(ctx context.Context, store Store, clientID string, ttl time.Duration) (*SimpleMode, error) {
	if clientID == "" {
		return nil, domain.ErrMissingClientID
	}
	m := &SimpleMode{
		clientID: clientID,
		key:      simpleModeKeyPrefix + clientID,
		store:    store,
		ttl:      ttl,
		subs:     make(map[uint64]chan bool),
	}

	data, err := store.Get(ctx, m.key)
	switch {
	case errors.Is(err, db.ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("load simple mode: %w", err)
	default:
		m.value, _ = strconv.ParseBool(string(data))
	}
	return m, nil
}

// IsSimpleMode reports the current flag.
func (m *SimpleMode) IsSimpleMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

// Set persists v and notifies subscribers when the flag changes.
func (m *SimpleMode) Set(ctx context.Context, v bool) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if err := m.store.SetWithTTL(ctx, m.key, []byte(strconv.FormatBool(v)), m.ttl); err != nil {
		return fmt.Errorf("store simple mode: %w", err)
	}
	m.publish(v)
	return nil
}

// Reset forgets the stored flag, falling back to false.
func (m *SimpleMode) Reset(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	if err := m.store.Del(ctx, m.key); err != nil {
		return fmt.Errorf("reset simple mode: %w", err)
	}
	m.publish(false)
	return nil
}

// Subscribe returns a channel receiving every change and a func releasing it.
// A slow subscriber only ever sees the latest value.
func (m *SimpleMode) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	ch := make(chan bool, 1)
	m.subs[id] = ch
	m.mu.Unlock()
	m.notifyWatch(1)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			close(ch)
			m.mu.Unlock()
			m.notifyWatch(-1)
		})
	}
}

func (m *SimpleMode) notifyWatch(delta int) {
	if m.onWatch != nil {
		m.onWatch(m, delta)
	}
}

func (m *SimpleMode) publish(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == v {
		return
	}
	m.value = v
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
