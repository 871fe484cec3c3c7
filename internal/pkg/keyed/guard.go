package keyed

import "sync"

// Guard is a set of in-flight keys. The zero value is ready to use.
type Guard[K comparable] struct {
	mu   sync.Mutex
	held map[K]struct{}
}

// TryAcquire marks key as in flight. It returns ok=false without blocking when the
// key is already held. The returned release func is idempotent.
func (g *Guard[K]) TryAcquire(key K) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held == nil {
		g.held = make(map[K]struct{})
	}
	if _, busy := g.held[key]; busy {
		return func() {}, false
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, true
}

// Held reports whether key is currently in flight.
func (g *Guard[K]) Held(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.held[key]
	return ok
}
