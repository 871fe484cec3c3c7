package keyed

import (
	"cmp"
	"slices"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Mutex is a set of mutexes addressed by key. The zero value is ready to use.
type Mutex[K cmp.Ordered] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

// Lock acquires every distinct key in ascending order and returns a func that
// releases them. Lock with no keys returns a no-op unlock.
func (m *Mutex[K]) Lock(keys ...K) (unlock func()) {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]*entry, 0, len(keys))
	for _, k := range keys {
		e := m.ref(k)
		e.mu.Lock()
		held = append(held, e)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(keys) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				m.unref(keys[i])
			}
		})
	}
}

func (m *Mutex[K]) ref(key K) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[K]*entry)
	}
	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	e.refs++
	return e
}

func (m *Mutex[K]) unref(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

// Len returns the number of keys currently locked or awaited.
func (m *Mutex[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
