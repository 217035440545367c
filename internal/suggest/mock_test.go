package suggest

import (
	"context"
	"sync"

	"github.com/kailas-cloud/skysearch/internal/domain/equipment"
	"github.com/kailas-cloud/skysearch/internal/domain/user"
)

// mockCatalog implements EquipmentCatalog and records every call.
type mockCatalog struct {
	mu     sync.Mutex
	calls  []equipment.FindQuery
	types  []equipment.ItemType
	findFn func(itemType equipment.ItemType, q equipment.FindQuery) (equipment.Page, error)
}

func (m *mockCatalog) Find(_ context.Context, itemType equipment.ItemType, q equipment.FindQuery) (equipment.Page, error) {
	m.mu.Lock()
	m.calls = append(m.calls, q)
	m.types = append(m.types, itemType)
	m.mu.Unlock()
	if m.findFn != nil {
		return m.findFn(itemType, q)
	}
	return equipment.Page{}, nil
}

func (m *mockCatalog) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockDirectory implements UserDirectory.
type mockDirectory struct {
	mu       sync.Mutex
	calls    int
	profiles []user.Profile
	err      error
}

func (m *mockDirectory) Find(_ context.Context, _ string, _ int) ([]user.Profile, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.profiles, m.err
}
