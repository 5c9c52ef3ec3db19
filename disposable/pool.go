package disposable

import (
	"sync"

	"github.com/pkg/errors"
)

// Pool batches unrelated disposables behind a single Dispose call. It is a
// consumer of the Disposable contract: each pooled resource is released
// exactly once, and a failing resource never prevents the rest of the pool
// from being released.
type Pool struct {
	mu       sync.Mutex
	entries  []poolEntry
	disposed bool
}

type poolEntry struct {
	name string
	item Disposable
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add registers item under name for later disposal. Adding to a pool that
// has already been disposed returns a DisposedError.
func (p *Pool) Add(name string, item Disposable) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return NewDisposedError("disposable pool")
	}
	p.entries = append(p.entries, poolEntry{name: name, item: item})
	return nil
}

// Len reports the number of resources still held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// IsDisposed reports whether the pool has been disposed.
func (p *Pool) IsDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// Dispose releases every pooled resource in insertion order. A failing
// resource does not stop the pass; the result holds one error per failure,
// or nil when every resource released cleanly. Disposing an already-disposed
// pool is a no-op.
func (p *Pool) Dispose() []error {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return nil
	}
	p.disposed = true
	entries := p.entries
	p.entries = nil
	p.mu.Unlock()

	var faults []error
	for _, e := range entries {
		if err := disposeEntry(e); err != nil {
			faults = append(faults, err)
		}
	}
	return faults
}

// disposeEntry releases one resource, converting a panicking Dispose into
// that resource's fault.
func disposeEntry(e poolEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = errors.Wrapf(rerr, "dispose %q", e.name)
				return
			}
			err = errors.Errorf("dispose %q: %v", e.name, r)
		}
	}()

	e.item.Dispose()
	return nil
}
