package filter

import "sync"

// Registry maps filter keys to their descriptors.
// It is written once at startup and read by every request afterwards.
type Registry struct {
	mu    sync.RWMutex
	order []Descriptor
	byKey map[string]Descriptor
}

// NewRegistry creates a registry populated with descs.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byKey: make(map[string]Descriptor)}
	if len(descs) > 0 {
		r.Register(descs)
	}
	return r
}

// Register replaces the whole active set. Later duplicates of a key win.
func (r *Registry) Register(descs []Descriptor) {
	order := make([]Descriptor, 0, len(descs))
	byKey := make(map[string]Descriptor, len(descs))
	for _, d := range descs {
		if _, dup := byKey[d.Key]; dup {
			for i := range order {
				if order[i].Key == d.Key {
					order[i] = d
				}
			}
		} else {
			order = append(order, d)
		}
		byKey[d.Key] = d
	}

	r.mu.Lock()
	r.order = order
	r.byKey = byKey
	r.mu.Unlock()
}

// LookupByKey returns the descriptor registered under key.
func (r *Registry) LookupByKey(key string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byKey[key]
	return d, ok
}

// KeyOf returns the key of a registered descriptor equal to d.
func (r *Registry) KeyOf(d Descriptor) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.order {
		if reg == d {
			return reg.Key, true
		}
	}
	return "", false
}

// All returns the descriptors in registration order.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Selectable returns the descriptors a user can pick directly, skipping
// the ones reachable only through autocomplete.
func (r *Registry) Selectable() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, d := range r.order {
		if !d.AutoCompleteOnly {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
