package patterns

import (
	"io"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownTopic rejects publishes whose topic is outside a declared topic
// set.
var ErrUnknownTopic = errors.New("topic not in topic set")

// TopicSet is a fixed, ordered set of topic keys declared by the integrator.
// Keys are compared by equality only.
type TopicSet struct {
	names []string
}

// NewTopicSet builds a set from names, keeping first-seen order and dropping
// duplicates.
func NewTopicSet(names ...string) TopicSet {
	var ts TopicSet
	for _, n := range names {
		if !slices.Contains(ts.names, n) {
			ts.names = append(ts.names, n)
		}
	}
	return ts
}

// Contains reports whether topic is a member of the set.
func (ts TopicSet) Contains(topic string) bool {
	return slices.Contains(ts.names, topic)
}

// Names returns the topic keys in declaration order.
func (ts TopicSet) Names() []string {
	return slices.Clone(ts.names)
}

// Len reports the number of topics in the set.
func (ts TopicSet) Len() int {
	return len(ts.names)
}

// ValidateTopics returns a publish validator that rejects topics outside ts.
// Wire it with WithValidator so an unknown-topic publish is broadcast
// through the error path instead of being fanned out.
func ValidateTopics[T any](ts TopicSet) func(msg Message[T]) error {
	return func(msg Message[T]) error {
		if !ts.Contains(msg.Topic) {
			return errors.Wrapf(ErrUnknownTopic, "topic %q", msg.Topic)
		}
		return nil
	}
}

// topicSetDoc is the YAML shape accepted by TopicSetFromYAML.
type topicSetDoc struct {
	Topics []string `yaml:"topics"`
}

// TopicSetFromYAML loads a declarative topic set, e.g.
//
//	topics:
//	  - user.updates
//	  - order.events
func TopicSetFromYAML(r io.Reader) (TopicSet, error) {
	var doc topicSetDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return TopicSet{}, errors.Wrap(err, "decode topic set")
	}
	return NewTopicSet(doc.Topics...), nil
}
