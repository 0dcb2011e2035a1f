package directory

import (
	"context"
	"sync"
	"sync/atomic"

	"outofoffice/internal/platform/logger"
)

// Source holds the current snapshot for long running processes. Readers
// never block; Reload swaps in a complete new snapshot or keeps the old
// one on failure
type Source struct {
	opts Options
	cur  atomic.Pointer[Directory]
	mu   sync.Mutex // serialises reloads
}

// NewSource loads once and fails if that load fails
func NewSource(ctx context.Context, opts Options) (*Source, error) {
	d, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	s := &Source{opts: opts}
	s.cur.Store(d)
	return s, nil
}

// Static wraps a fixed snapshot; Reload on it reloads from opts
func Static(d *Directory, opts Options) *Source {
	s := &Source{opts: opts}
	s.cur.Store(d)
	return s
}

// Current returns the live snapshot
func (s *Source) Current() *Directory { return s.cur.Load() }

// Reload reads the data directory again and swaps the snapshot in
func (s *Source) Reload(ctx context.Context) (*Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := Load(ctx, s.opts)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("reload failed, keeping previous snapshot")
		return nil, err
	}
	s.cur.Store(d)
	return d, nil
}
