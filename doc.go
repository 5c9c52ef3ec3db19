/*
Package patterns implements a small, synchronous, in-process notification
framework with three escalating abstractions: a one-to-many observer channel,
a topic-filtered publish/subscribe channel, and a mediator that layers
sender-aware routing on top of pub/sub. Deterministic resource disposal
underlies all three: every registration hands back a revocable handle from
the disposable subpackage, and revocation is always idempotent.

# Key Features

  - Ordered, Synchronous Delivery: an emitter delivers to its receivers in
    subscription order and returns only after every eligible receiver has
    returned. There is no buffering, no goroutines, no backpressure.

  - Topic Filtering: receivers that declare a topic set get only those
    topics; receivers without one behave as plain observers and get
    everything. Errors and completion are channel-level events and ignore
    topic filters.

  - Sender-Aware Mediation: participants carry a unique identity and can
    publish back into every mediator they are linked to. A mediator never
    echoes a message back to the participant that sent it.

  - Idempotent Disposal: a Subscription is a stable slot handle into the
    emitter's registration table. Disposing twice, or after the emitter
    completed, is always a safe no-op, and liveness is an O(1) check.

# Observer Channel

Create an Observable, subscribe receivers, publish values. An Observer tracks
its own subscription and drops it when the stream completes.

	obs := patterns.NewObservable[int]()

	first := patterns.NewObserver(func(v int) {
		fmt.Println("first saw", v)
	})
	second := patterns.NewObserver(func(v int) {
		fmt.Println("second saw", v)
	})

	obs.Subscribe(first)
	sub := obs.Subscribe(second)

	obs.Publish(1) // both receivers, in order
	sub.Dispose()
	obs.Publish(2) // first only

	obs.Complete() // remaining receivers notified, table cleared

# Pub/Sub Channel

A Channel routes (topic, payload) pairs. Subscribers declare a fixed topic
set at construction.

	ch := patterns.NewChannel[string]()

	news := patterns.NewSubscriber([]string{"news"}, func(msg patterns.Message[string]) {
		fmt.Printf("news desk: %s\n", msg.Data)
	})
	everything := patterns.NewObserver(func(msg patterns.Message[string]) {
		fmt.Printf("audit log: %s/%s\n", msg.Topic, msg.Data)
	})

	ch.Subscribe(news)
	ch.Subscribe(everything)

	ch.Publish(patterns.Message[string]{Topic: "news", Data: "go 1.21 released"})
	ch.Publish(patterns.Message[string]{Topic: "sports", Data: "match tonight"}) // audit log only

# Guarded Publish

A channel built with a validator never fans out a rejected message; the
rejection is broadcast through every receiver's OnError instead. Combine it
with a declarative topic set to enforce an integrator-supplied topic map.

	ts := patterns.NewTopicSet("news", "sports")
	ch := patterns.NewChannel(patterns.WithValidator(patterns.ValidateTopics[string](ts)))

	ch.Publish(patterns.Message[string]{Topic: "weather", Data: "rain"})
	// receivers get OnError(ErrUnknownTopic), nobody gets OnNext

# Mediator and Participants

A Mediator accepts plain observers, subscribers, and participants. A
participant registered with a mediator is linked back automatically, so its
publishes flow through the mediator to everyone else.

	m := patterns.NewMediator[string]()

	alice := patterns.NewParticipant([]string{"room"}, func(msg patterns.Message[string]) {
		fmt.Println("alice got", msg.Data)
	})
	bob := patterns.NewParticipant([]string{"room"}, func(msg patterns.Message[string]) {
		fmt.Println("bob got", msg.Data)
	})

	m.Subscribe(alice)
	m.Subscribe(bob)

	alice.Publish(patterns.Message[string]{Topic: "room", Data: "hi"})
	// bob got hi — alice never hears her own message

The mediator-side registration and the participant-side link are
independently revocable. Disposing the handle returned by Link stops the
participant's outgoing publishes to that mediator but leaves it registered
for incoming traffic.

# Disposal Pools

The disposable.Pool batches unrelated resources through the same disposal
contract and reports one fault per failing resource instead of aborting at
the first failure.

	pool := disposable.NewPool()
	pool.Add("alice-link", m.Subscribe(alice))
	pool.Add("news-desk", ch.Subscribe(news))

	if errs := pool.Dispose(); errs != nil {
		for _, err := range errs {
			fmt.Println("dispose failed:", err)
		}
	}
*/
package patterns
