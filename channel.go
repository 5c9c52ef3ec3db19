package patterns

import "slices"

// Channel is a topic pub/sub emitter. Messages are (topic, payload) pairs;
// receivers exposing a TopicFilter get only the topics they declared, while
// receivers without one behave as plain observers and get everything.
type Channel[T any] struct {
	reg      registry
	validate func(msg Message[T]) error
}

// ChannelOption configures a Channel at construction.
type ChannelOption[T any] func(*Channel[T])

// WithValidator guards publishes: a message rejected by fn is never fanned
// out, and the rejection is broadcast through every receiver's OnError
// instead of escaping to the caller.
func WithValidator[T any](fn func(msg Message[T]) error) ChannelOption[T] {
	return func(c *Channel[T]) {
		c.validate = fn
	}
}

// NewChannel creates a pub/sub channel with no receivers.
func NewChannel[T any](opts ...ChannelOption[T]) *Channel[T] {
	c := &Channel[T]{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers r and returns its subscription. No dedup at this
// layer. Receivers that track their own registration are handed the new
// subscription.
func (c *Channel[T]) Subscribe(r Receiver[Message[T]]) *Subscription {
	sub := newSubscription(&c.reg, c.reg.add(r))
	if tr, ok := r.(tracker); ok {
		tr.track(sub)
	}
	return sub
}

// Publish routes msg to every receiver whose topic filter admits msg.Topic,
// in subscription order. Receivers are handed the full (topic, payload)
// pair. When a validator is configured and rejects the message, the failure
// is routed through Error instead of fan-out.
func (c *Channel[T]) Publish(msg Message[T]) {
	if c.validate != nil {
		if err := c.validate(msg); err != nil {
			c.Error(err)
			return
		}
	}

	bound := c.reg.bound()
	for i := 0; i < bound; i++ {
		v, ok := c.reg.at(i)
		if !ok {
			continue
		}
		r := v.(Receiver[Message[T]])
		if !admitsTopic(r, msg.Topic) {
			continue
		}
		r.OnNext(msg)
	}
}

// Error notifies every registered receiver regardless of topic filter:
// errors are channel-level, not topic-level, events.
func (c *Channel[T]) Error(err error) {
	bound := c.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := c.reg.at(i); ok {
			v.(Receiver[Message[T]]).OnError(err)
		}
	}
}

// Complete notifies every registered receiver regardless of topic filter,
// then clears the registration table.
func (c *Channel[T]) Complete() {
	bound := c.reg.bound()
	for i := 0; i < bound; i++ {
		if v, ok := c.reg.at(i); ok {
			v.(Receiver[Message[T]]).OnComplete()
		}
	}
	c.reg.clear()
}

// Len reports the number of registered receivers.
func (c *Channel[T]) Len() int {
	return c.reg.count()
}

// admitsTopic applies a receiver's topic filter, if it declares one.
func admitsTopic[T any](r Receiver[Message[T]], topic string) bool {
	tf, ok := r.(TopicFilter)
	if !ok {
		return true
	}
	return slices.Contains(tf.Topics(), topic)
}

// Subscriber is a topic-filtered receiver for channels and mediators. Its
// topic set is fixed at construction and never changes.
type Subscriber[T any] struct {
	Observer[Message[T]]
	topics []string
}

// NewSubscriber builds a subscriber interested in topics, handing matching
// messages to next.
func NewSubscriber[T any](topics []string, next func(msg Message[T])) *Subscriber[T] {
	return &Subscriber[T]{
		Observer: Observer[Message[T]]{Next: next},
		topics:   slices.Clone(topics),
	}
}

// Topics returns the fixed set of topics this subscriber declared interest
// in.
func (s *Subscriber[T]) Topics() []string {
	return slices.Clone(s.topics)
}
