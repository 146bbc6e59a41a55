package synchronization

import (
	"context"
	"sync"
)

// flight is the shared context of one coalesced run. The run keeps going while at
// least one joined caller is still waiting and is cancelled once every caller has left.
type flight struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	waiters []context.Context
	stops   []func() bool
}

// newFlight detaches from the first caller's cancellation but keeps its values
func newFlight(parent context.Context) *flight {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	return &flight{ctx: ctx, cancel: cancel}
}

func (f *flight) join(ctx context.Context) {
	f.mu.Lock()
	f.waiters = append(f.waiters, ctx)
	f.mu.Unlock()

	stop := context.AfterFunc(ctx, f.release)

	f.mu.Lock()
	f.stops = append(f.stops, stop)
	f.mu.Unlock()
}

// err is non-nil once every joined caller has gone away
func (f *flight) err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var last error
	for _, w := range f.waiters {
		err := w.Err()
		if err == nil {
			return nil
		}
		last = err
	}
	return last
}

func (f *flight) release() {
	if f.err() != nil {
		f.cancel()
	}
}

func (f *flight) finish() {
	f.mu.Lock()
	stops := f.stops
	f.stops = nil
	f.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
	f.cancel()
}
