package patterns

import "github.com/kz-io/patterns/disposable"

// Observable is a one-to-many emitter. It delivers values, an error, or
// completion to every registered receiver synchronously, in subscription
// order.
type Observable[T any] struct {
	reg registry
}

// NewObservable creates an emitter with no receivers.
func NewObservable[T any]() *Observable[T] {
	return &Observable[T]{}
}

// Subscribe registers r and returns its subscription. There is no dedup at
// this layer: registering the same receiver twice delivers twice. Receivers
// that track their own registration are handed the new subscription.
func (o *Observable[T]) Subscribe(r Receiver[T]) *Subscription {
	sub := newSubscription(&o.reg, o.reg.add(r))
	if tr, ok := r.(tracker); ok {
		tr.track(sub)
	}
	return sub
}

// Publish delivers value to every receiver registered when the pass began,
// in subscription order. A receiver disposed mid-pass is skipped; one
// subscribed mid-pass waits for the next publish. A panicking receiver
// aborts the remainder of the pass.
func (o *Observable[T]) Publish(value T) {
	bound := o.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := o.reg.at(i); ok {
			v.(Receiver[T]).OnNext(value)
		}
	}
}

// Error delivers err to every registered receiver.
func (o *Observable[T]) Error(err error) {
	bound := o.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := o.reg.at(i); ok {
			v.(Receiver[T]).OnError(err)
		}
	}
}

// Complete notifies every registered receiver in subscription order, then
// clears the registration table: every outstanding subscription reports
// disposed and later publishes deliver to nobody.
func (o *Observable[T]) Complete() {
	bound := o.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := o.reg.at(i); ok {
			v.(Receiver[T]).OnComplete()
		}
	}
	o.reg.clear()
}

// Len reports the number of registered receivers.
func (o *Observable[T]) Len() int {
	return o.reg.count()
}

// Observer is the receiver-side mirror of an Observable: callback hooks plus
// the one subscription it currently holds. Subscribing an Observer to any
// emitter in this package tracks the new subscription automatically,
// replacing (not disposing) a previously tracked one.
type Observer[T any] struct {
	Next func(value T)
	Err  func(err error)
	Done func()

	sub disposable.Disposable
}

// NewObserver builds an observer around a value hook.
func NewObserver[T any](next func(value T)) *Observer[T] {
	return &Observer[T]{Next: next}
}

func (o *Observer[T]) OnNext(value T) {
	if o.Next != nil {
		o.Next(value)
	}
}

func (o *Observer[T]) OnError(err error) {
	if o.Err != nil {
		o.Err(err)
	}
}

// OnComplete runs the Done hook, then drops this observer's own
// registration.
func (o *Observer[T]) OnComplete() {
	if o.Done != nil {
		o.Done()
	}
	o.Unsubscribe()
}

// Unsubscribe disposes the tracked subscription; a no-op when the observer
// was never subscribed.
func (o *Observer[T]) Unsubscribe() {
	if o.sub != nil {
		o.sub.Dispose()
	}
}

// Subscription returns the tracked subscription, nil if the observer has
// never been subscribed.
func (o *Observer[T]) Subscription() disposable.Disposable {
	return o.sub
}

func (o *Observer[T]) track(sub disposable.Disposable) {
	o.sub = sub
}
