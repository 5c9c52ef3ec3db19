// Package disposable defines the revocable-resource contract shared by every
// registration handle in this module, along with the error types raised when
// a disposed resource is used again.
package disposable

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDisposed is the sentinel matched by errors.Is for any fault caused by
// using a resource after it was disposed.
var ErrDisposed = errors.New("resource has been disposed")

// Disposable holds a revocable resource. Dispose is idempotent and
// order-independent: calling it on an already-disposed resource is a safe
// no-op, never a fault.
type Disposable interface {
	Dispose()
	IsDisposed() bool
}

// DisposedError reports an operation attempted on a resource after it was
// disposed. Resource names the offending resource; Message, when set,
// replaces the default description.
type DisposedError struct {
	Resource string
	Message  string
}

// NewDisposedError builds a DisposedError with the default message.
func NewDisposedError(resource string) *DisposedError {
	return &DisposedError{Resource: resource}
}

// NewDisposedErrorMessage builds a DisposedError with a caller-supplied
// message in place of the default.
func NewDisposedErrorMessage(resource, message string) *DisposedError {
	return &DisposedError{Resource: resource, Message: message}
}

func (e *DisposedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Resource, e.Message)
	}
	return fmt.Sprintf("%s has been disposed and cannot be used", e.Resource)
}

func (e *DisposedError) Unwrap() error {
	return ErrDisposed
}
