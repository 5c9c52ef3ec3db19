package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	patterns "github.com/kz-io/patterns"
	"github.com/kz-io/patterns/disposable"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "mediator"})
	logger.SetLevel(log.DebugLevel)

	m := patterns.NewMediator(patterns.WithLogger[string](logger))

	// Two participants share the "room" topic; each will see the other's
	// messages but never its own.
	alice := patterns.NewParticipant([]string{"room"}, func(msg patterns.Message[string]) {
		fmt.Printf("(alice) received: Topic='%s', Data='%s'\n", msg.Topic, msg.Data)
	})
	bob := patterns.NewParticipant([]string{"room"}, func(msg patterns.Message[string]) {
		fmt.Printf("(bob) received: Topic='%s', Data='%s'\n", msg.Topic, msg.Data)
	})

	// A subscriber scoped to "ops" and a plain observer that sees everything.
	ops := patterns.NewSubscriber([]string{"ops"}, func(msg patterns.Message[string]) {
		fmt.Printf("(ops desk) received: Topic='%s', Data='%s'\n", msg.Topic, msg.Data)
	})
	audit := patterns.NewObserver(func(msg patterns.Message[string]) {
		fmt.Printf("(audit) received: Topic='%s', Data='%s'\n", msg.Topic, msg.Data)
	})

	pool := disposable.NewPool()
	mustAdd := func(name string, d disposable.Disposable) {
		if err := pool.Add(name, d); err != nil {
			logger.Fatal("pool add failed", "name", name, "err", err)
		}
	}
	mustAdd("alice", m.Subscribe(alice))
	mustAdd("bob", m.Subscribe(bob))
	mustAdd("ops", m.Subscribe(ops))
	mustAdd("audit", m.Subscribe(audit))

	fmt.Println("\n--- alice publishes to 'room' ---")
	alice.Publish(patterns.Message[string]{Topic: "room", Data: "hello from alice"})

	fmt.Println("\n--- bob publishes to 'room' ---")
	bob.Publish(patterns.Message[string]{Topic: "room", Data: "hello from bob"})

	fmt.Println("\n--- mediator broadcasts to 'ops' ---")
	m.Publish(patterns.Message[string]{Topic: "ops", Data: "deploy finished"})

	fmt.Println("\n--- disposing bob's outgoing link ---")
	bobHalves := m.Subscribe(bob) // already registered: composite over both halves
	bobHalves.Dispose()

	fmt.Println("\n--- alice publishes again (bob is gone) ---")
	alice.Publish(patterns.Message[string]{Topic: "room", Data: "anyone there?"})

	fmt.Println("\n--- disposing everything ---")
	if errs := pool.Dispose(); errs != nil {
		for _, err := range errs {
			fmt.Println("dispose failed:", err)
		}
	}

	fmt.Println("\n--- publish after disposal reaches nobody ---")
	m.Publish(patterns.Message[string]{Topic: "room", Data: "silence"})

	fmt.Println("\n--- main finished ---")
}
