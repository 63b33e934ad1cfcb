package shared

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventBus is the transport contract modules depend on. It satisfies the
// watermill Publisher and Subscriber interfaces so it can be handed straight
// to a message.Router, and adds JetStream stream management on top.
//
// Publish semantics: when the topic argument is empty the subject is read
// from the message's "topic" metadata. Routers register handlers with an
// empty publish topic so each produced message can carry its own subject.
type EventBus interface {
	message.Publisher
	message.Subscriber

	// CreateStream ensures a JetStream stream exists covering the given
	// subjects, updating the subject list of an existing stream if needed.
	CreateStream(ctx context.Context, streamName string, subjects ...string) error
}
