package patterns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TopicFilterRouting(t *testing.T) {
	ch := NewChannel[string]()

	scoped := &filtered[string]{topics: []string{"A", "B"}}
	everything := &recorder[Message[string]]{}
	ch.Subscribe(scoped)
	ch.Subscribe(everything)

	ch.Publish(Message[string]{Topic: "A", Data: "a"})
	ch.Publish(Message[string]{Topic: "B", Data: "b"})
	ch.Publish(Message[string]{Topic: "C", Data: "c"})

	require.Equal(t, []Message[string]{
		{Topic: "A", Data: "a"},
		{Topic: "B", Data: "b"},
	}, scoped.Values())
	require.Equal(t, []Message[string]{
		{Topic: "A", Data: "a"},
		{Topic: "B", Data: "b"},
		{Topic: "C", Data: "c"},
	}, everything.Values())
}

func Test_SubscriberReceivesFullPair(t *testing.T) {
	ch := NewChannel[int]()

	var got []Message[int]
	sub := NewSubscriber([]string{"orders"}, func(msg Message[int]) {
		got = append(got, msg)
	})
	ch.Subscribe(sub)

	ch.Publish(Message[int]{Topic: "orders", Data: 42})
	require.Equal(t, []Message[int]{{Topic: "orders", Data: 42}}, got)
}

func Test_SubscriberTopicsAreFixed(t *testing.T) {
	topics := []string{"A"}
	sub := NewSubscriber[string](topics, nil)

	topics[0] = "B"
	assert.Equal(t, []string{"A"}, sub.Topics())

	got := sub.Topics()
	got[0] = "C"
	assert.Equal(t, []string{"A"}, sub.Topics())
}

func Test_ErrorAndCompleteIgnoreTopicFilters(t *testing.T) {
	ch := NewChannel[string]()

	scoped := &filtered[string]{topics: []string{"A"}}
	everything := &recorder[Message[string]]{}
	subA := ch.Subscribe(scoped)
	subB := ch.Subscribe(everything)

	boom := errors.New("boom")
	ch.Error(boom)
	require.Len(t, scoped.Errs(), 1)
	require.Len(t, everything.Errs(), 1)

	ch.Complete()
	assert.Equal(t, 1, scoped.Completed())
	assert.Equal(t, 1, everything.Completed())
	assert.True(t, subA.IsDisposed())
	assert.True(t, subB.IsDisposed())
	assert.Zero(t, ch.Len())
}

func Test_ValidatorReroutesFailureThroughError(t *testing.T) {
	bad := errors.New("rejected")
	ch := NewChannel(WithValidator(func(msg Message[string]) error {
		if msg.Topic == "bad" {
			return bad
		}
		return nil
	}))

	scoped := &filtered[string]{topics: []string{"good"}}
	everything := &recorder[Message[string]]{}
	ch.Subscribe(scoped)
	ch.Subscribe(everything)

	ch.Publish(Message[string]{Topic: "good", Data: "x"})
	require.Len(t, scoped.Values(), 1)
	require.Len(t, everything.Values(), 1)

	// The rejection is broadcast to every receiver, topic filters included,
	// and the message itself is never fanned out.
	ch.Publish(Message[string]{Topic: "bad", Data: "y"})
	require.Len(t, scoped.Values(), 1)
	require.Len(t, everything.Values(), 1)
	require.Equal(t, []error{bad}, scoped.Errs())
	require.Equal(t, []error{bad}, everything.Errs())
}

func Test_ChannelSubscribeTracksObservers(t *testing.T) {
	ch := NewChannel[string]()

	o := NewObserver(func(Message[string]) {})
	sub := ch.Subscribe(o)
	require.Same(t, sub, o.Subscription())

	o.Unsubscribe()
	assert.True(t, sub.IsDisposed())
	assert.Zero(t, ch.Len())
}
