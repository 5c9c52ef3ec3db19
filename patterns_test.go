package patterns

import (
	"slices"
	"sync"
)

// recorder is a Receiver that records everything it is handed.
type recorder[T any] struct {
	mu        sync.Mutex
	values    []T
	errs      []error
	completed int
}

func (r *recorder[T]) OnNext(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *recorder[T]) OnError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder[T]) OnComplete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.values)
}

func (r *recorder[T]) Errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errs)
}

func (r *recorder[T]) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// filtered is a recorder that also declares a topic filter.
type filtered[T any] struct {
	recorder[Message[T]]
	topics []string
}

func (f *filtered[T]) Topics() []string {
	return f.topics
}
