package store

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sentquant/analytics/pkg/logger"
)

// BuildFunc produces a fresh store
type BuildFunc func(ctx context.Context) (*Store, error)

// Loader owns the current store and signals once the first build is ready.
// Concurrent Reload calls share one build.
type Loader struct {
	build BuildFunc
	log   *logger.Logger
	group singleflight.Group

	mu      sync.RWMutex
	current *Store

	ready     chan struct{}
	readyOnce sync.Once
}

// NewLoader creates a loader. Nothing is built until Reload is called.
func NewLoader(build BuildFunc, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		build: build,
		log:   log.Component("loader"),
		ready: make(chan struct{}),
	}
}

// Ready is closed after the first successful build
func (l *Loader) Ready() <-chan struct{} {
	return l.ready
}

// Current returns the latest store, nil before the first build
func (l *Loader) Current() *Store {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Wait blocks until a store is ready or ctx is done
func (l *Loader) Wait(ctx context.Context) (*Store, error) {
	select {
	case <-l.ready:
		return l.Current(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Reload builds a new store and swaps it in. A failed build keeps the previous store.
// The shared build is detached from any single caller's cancellation; each caller
// stops waiting when its own ctx is done while the build runs on for the others.
func (l *Loader) Reload(ctx context.Context) (*Store, error) {
	buildCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan("build", func() (interface{}, error) {
		s, err := l.build(buildCtx)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.current = s
		l.mu.Unlock()
		l.readyOnce.Do(func() { close(l.ready) })
		return s, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			l.log.WithError(res.Err).Warn("store reload failed")
			return nil, res.Err
		}

		s := res.Val.(*Store)
		l.log.WithFields(map[string]interface{}{
			"run_id": s.RunID(),
			"shared": res.Shared,
		}).Debug("store reloaded")
		return s, nil
	}
}
