package patterns

import "github.com/kz-io/patterns/disposable"

// Receiver accepts notifications from an emitter: a value, a failure, or
// completion of the stream.
type Receiver[T any] interface {
	OnNext(value T)
	OnError(err error)
	OnComplete()
}

// Message is a routed (topic, payload) pair. Channels and mediators deliver
// the full pair, not the bare payload, so receivers can destructure.
type Message[T any] struct {
	Topic string
	Data  T
}

// Envelope is a mediator intake message: a Message stamped with the identity
// of the participant that sent it. The sender identity never reaches
// receivers; it only drives echo suppression.
type Envelope[T any] struct {
	Sender string
	Topic  string
	Data   T
}

// TopicFilter is implemented by receivers that want only a subset of topics.
// Receivers without it behave as plain observers and get every message.
type TopicFilter interface {
	Topics() []string
}

// Linked is implemented by receivers that maintain their own outbound
// mediator links and carry an identity (participants). A mediator classifies
// such a receiver as a participant when it registers and completes the
// bidirectional link by calling Link back.
type Linked[T any] interface {
	Receiver[Message[T]]
	Identity() string
	Link(m *Mediator[T]) disposable.Disposable
}

// ReceiverFuncs adapts plain functions into a Receiver. Nil hooks are
// skipped. Pass it by pointer so the receiver stays comparable for
// mediator registration.
type ReceiverFuncs[T any] struct {
	Next     func(value T)
	Error    func(err error)
	Complete func()
}

func (r *ReceiverFuncs[T]) OnNext(value T) {
	if r.Next != nil {
		r.Next(value)
	}
}

func (r *ReceiverFuncs[T]) OnError(err error) {
	if r.Error != nil {
		r.Error(err)
	}
}

func (r *ReceiverFuncs[T]) OnComplete() {
	if r.Complete != nil {
		r.Complete()
	}
}

// tracker is the hook emitters use to hand a fresh subscription to receivers
// that track their own registration. Tracking replaces any previously held
// subscription without disposing it.
type tracker interface {
	track(sub disposable.Disposable)
}
