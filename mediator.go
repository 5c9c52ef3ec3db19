package patterns

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/kz-io/patterns/disposable"
)

// receiverKind tags how a receiver was classified when it registered with a
// mediator. Classification happens once, at Subscribe; routing never
// re-probes the receiver.
type receiverKind uint8

const (
	kindObserver receiverKind = iota
	kindSubscriber
	kindParticipant
)

func (k receiverKind) String() string {
	switch k {
	case kindSubscriber:
		return "subscriber"
	case kindParticipant:
		return "participant"
	default:
		return "observer"
	}
}

// entry is one routed registration in a mediator's table.
type entry[T any] struct {
	rcv    Receiver[Message[T]]
	kind   receiverKind
	topics []string
	id     string
}

// Mediator is a pub/sub channel that additionally accepts participants:
// identified receivers that publish back through it. Intake messages carry
// the sender's identity, and routing suppresses the echo so a participant
// never hears its own message back. A mediator declares no topic filter of
// its own; it forwards every topic it is given.
type Mediator[T any] struct {
	reg registry
	log *log.Logger
}

// MediatorOption configures a Mediator at construction.
type MediatorOption[T any] func(*Mediator[T])

// WithLogger sets the mediator's diagnostic sink. The default discards
// everything.
func WithLogger[T any](logger *log.Logger) MediatorOption[T] {
	return func(m *Mediator[T]) {
		m.log = logger
	}
}

// NewMediator creates a mediator with no receivers.
func NewMediator[T any](opts ...MediatorOption[T]) *Mediator[T] {
	m := &Mediator[T]{
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// classify assigns a registration-time kind: a receiver with outbound links
// and an identity is a participant, one with only a topic filter is a
// subscriber, anything else is a plain observer.
func classify[T any](r Receiver[Message[T]]) entry[T] {
	if p, ok := r.(Linked[T]); ok {
		e := entry[T]{rcv: r, kind: kindParticipant, id: p.Identity()}
		if tf, ok := r.(TopicFilter); ok {
			e.topics = tf.Topics()
		}
		return e
	}
	if tf, ok := r.(TopicFilter); ok {
		return entry[T]{rcv: r, kind: kindSubscriber, topics: tf.Topics()}
	}
	return entry[T]{rcv: r, kind: kindObserver}
}

// Subscribe registers r, classifying it exactly once. The same receiver is
// never registered twice. A participant is additionally linked back, so it
// can publish through this mediator; the returned disposable then governs
// the participant-side link, or, when the participant was already
// registered, a composite over both halves — the two halves stay
// independently revocable either way.
func (m *Mediator[T]) Subscribe(r Receiver[Message[T]]) disposable.Disposable {
	idx := m.reg.find(func(v any) bool { return v.(entry[T]).rcv == r })
	existed := idx >= 0

	var e entry[T]
	if existed {
		v, _ := m.reg.at(idx)
		e = v.(entry[T])
	} else {
		e = classify[T](r)
		idx = m.reg.add(e)
	}

	local := newSubscription(&m.reg, idx)
	if tr, ok := r.(tracker); ok {
		tr.track(local)
	}
	m.log.Debug("receiver registered", "kind", e.kind, "id", e.id, "existing", existed)

	if e.kind != kindParticipant {
		return local
	}

	link := r.(Linked[T]).Link(m)
	if !existed {
		return link
	}
	// Already tracked: couple the aliased local half with the link half so
	// the caller is never handed a dead no-op handle.
	return &compositeDisposable{first: local, second: link}
}

// Next routes one intake message. Every registered receiver other than the
// sender sees the (topic, payload) pair: plain observers unconditionally,
// subscribers when the topic is in their filter, participants when the topic
// matches and their identity differs from the sender. Delivery follows
// registration order.
func (m *Mediator[T]) Next(env Envelope[T]) {
	msg := Message[T]{Topic: env.Topic, Data: env.Data}

	bound := m.reg.bound()
	for i := 0; i < bound; i++ {
		v, ok := m.reg.at(i)
		if !ok {
			continue
		}
		e := v.(entry[T])
		switch e.kind {
		case kindSubscriber:
			if !slices.Contains(e.topics, env.Topic) {
				continue
			}
		case kindParticipant:
			if e.id == env.Sender || !slices.Contains(e.topics, env.Topic) {
				continue
			}
		}
		e.rcv.OnNext(msg)
	}
}

// Publish routes msg with no sender identity. Participants always carry a
// non-empty identity, so nothing is suppressed and plain pub/sub semantics
// fall out of the one routing pass.
func (m *Mediator[T]) Publish(msg Message[T]) {
	m.Next(Envelope[T]{Topic: msg.Topic, Data: msg.Data})
}

// Error reports err to the diagnostic sink. Unlike a Channel, a mediator
// does not fan errors out to its receivers.
func (m *Mediator[T]) Error(err error) {
	m.log.Error("mediator error", "err", err)
}

// Complete notifies every registered receiver in registration order, then
// clears the table.
func (m *Mediator[T]) Complete() {
	bound := m.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := m.reg.at(i); ok {
			v.(entry[T]).rcv.OnComplete()
		}
	}
	m.reg.clear()
}

// Len reports the number of registered receivers.
func (m *Mediator[T]) Len() int {
	return m.reg.count()
}
