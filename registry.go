package patterns

import (
	"sync"

	"github.com/kz-io/patterns/disposable"
)

// registry is the slot table owned by every emitter. Registration appends a
// slot; disposal tombstones it in place. Slot indices are stable and never
// reused, so an outstanding Subscription can never alias a receiver
// registered later.
type registry struct {
	mu    sync.Mutex
	slots []slot
}

type slot struct {
	value any
	live  bool
}

// add appends value and returns its slot index.
func (r *registry) add(value any) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots = append(r.slots, slot{value: value, live: true})
	return len(r.slots) - 1
}

// find returns the index of the first live slot matched by fn, or -1.
func (r *registry) find(fn func(value any) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.slots {
		if s.live && fn(s.value) {
			return i
		}
	}
	return -1
}

// release tombstones one slot. Releasing a slot that is already dead, or an
// index the registry never issued, is a no-op.
func (r *registry) release(idx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx >= 0 && idx < len(r.slots) {
		r.slots[idx] = slot{}
	}
}

// alive reports whether the slot still holds its registration.
func (r *registry) alive(idx int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return idx >= 0 && idx < len(r.slots) && r.slots[idx].live
}

// at returns the value in slot idx if the slot is still live.
func (r *registry) at(idx int) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx < 0 || idx >= len(r.slots) {
		return nil, false
	}
	s := r.slots[idx]
	return s.value, s.live
}

// bound returns the number of slots present right now. A delivery pass
// iterates indices below the bound and re-checks liveness slot by slot, so a
// receiver disposed mid-pass is skipped and one registered mid-pass waits
// for the next pass.
func (r *registry) bound() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.slots)
}

// count reports the number of live registrations.
func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, s := range r.slots {
		if s.live {
			n++
		}
	}
	return n
}

// clear tombstones every slot at once. Every outstanding subscription for
// this registry reports disposed afterward.
func (r *registry) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		r.slots[i] = slot{}
	}
}

// Subscription binds one receiver registration to one emitter. It is a
// stable handle into the emitter's slot table: disposal tombstones the slot,
// and liveness is an O(1) check.
type Subscription struct {
	reg *registry
	idx int
}

func newSubscription(reg *registry, idx int) *Subscription {
	return &Subscription{reg: reg, idx: idx}
}

// Dispose removes the receiver from the emitter. Disposing twice, or after
// the emitter already cleared everything through Complete, is a safe no-op.
func (s *Subscription) Dispose() {
	s.reg.release(s.idx)
}

// IsDisposed reports whether the receiver is no longer registered with the
// emitter, through this handle or any other path.
func (s *Subscription) IsDisposed() bool {
	return !s.reg.alive(s.idx)
}

// compositeDisposable couples two independently revocable halves of one
// registration. Dispose revokes both; IsDisposed holds only when both halves
// are gone.
type compositeDisposable struct {
	first  disposable.Disposable
	second disposable.Disposable
}

func (c *compositeDisposable) Dispose() {
	c.first.Dispose()
	c.second.Dispose()
}

func (c *compositeDisposable) IsDisposed() bool {
	return c.first.IsDisposed() && c.second.IsDisposed()
}
