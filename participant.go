package patterns

import (
	"slices"

	"github.com/google/uuid"

	"github.com/kz-io/patterns/disposable"
)

// Participant is an identified receiver that can also publish back into
// every mediator it is linked to. Its topic set and identity token are fixed
// at construction. The mediator-side registration and the participant-side
// link are independently revocable halves of the same relationship.
type Participant[T any] struct {
	Observer[Message[T]]

	id     string
	topics []string
	links  registry
}

// NewParticipant builds a participant interested in topics with a freshly
// generated identity, handing routed messages to next. Error and completion
// hooks can be set on the embedded Observer.
func NewParticipant[T any](topics []string, next func(msg Message[T])) *Participant[T] {
	return &Participant[T]{
		Observer: Observer[Message[T]]{Next: next},
		id:       uuid.NewString(),
		topics:   slices.Clone(topics),
	}
}

// Identity returns the unique token used for echo suppression.
func (p *Participant[T]) Identity() string {
	return p.id
}

// Topics returns the fixed set of topics this participant declared interest
// in.
func (p *Participant[T]) Topics() []string {
	return slices.Clone(p.topics)
}

// Link tracks m as an outgoing publish target and, for a mediator not seen
// before, registers this participant with it, completing the bidirectional
// link. The returned subscription covers only the outgoing half: disposing
// it stops publishes to m but does not remove this participant from m's
// intake.
func (p *Participant[T]) Link(m *Mediator[T]) disposable.Disposable {
	if idx := p.links.find(func(v any) bool { return v.(*Mediator[T]) == m }); idx >= 0 {
		return newSubscription(&p.links, idx)
	}

	sub := newSubscription(&p.links, p.links.add(m))
	m.Subscribe(p)
	return sub
}

// Links reports the number of mediators currently tracked as publish
// targets.
func (p *Participant[T]) Links() int {
	return p.links.count()
}

// Publish stamps msg with this participant's identity and hands it to every
// linked mediator. A participant with no links publishes to nobody.
func (p *Participant[T]) Publish(msg Message[T]) {
	bound := p.links.bound()
	for i := 0; i < bound; i++ {
		if v, ok := p.links.at(i); ok {
			v.(*Mediator[T]).Next(Envelope[T]{Sender: p.id, Topic: msg.Topic, Data: msg.Data})
		}
	}
}
