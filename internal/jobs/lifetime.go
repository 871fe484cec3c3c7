package jobs

import (
	"context"
	"sync"
)

// lifetime owns the goroutines of a post-commit task runner.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func newLifetime() *lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return &lifetime{ctx: ctx, cancel: cancel}
}

// goBound runs fn on a context carrying the values of ctx that is cancelled when
// either ctx or the lifetime ends. It reports false once the lifetime is stopped.
func (l *lifetime) goBound(ctx context.Context, fn func(ctx context.Context)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return false
	}

	bound, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()
		defer stop()

		fn(bound)
	}()
	return true
}

// stop cancels running work and waits for it to return.
func (l *lifetime) stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}
