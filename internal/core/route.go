package core

import "context"

// Route identifies the conversation an inbound message arrived on and how to
// answer it. Implemented by the transports, consumed by the dispatch engine
// and by handlers.
type Route interface {
	// Conversation returns the shared-conversation identifier, or the empty
	// string for a direct/private message.
	Conversation() string

	Send(ctx context.Context, text string) error

	// Direct returns a variant of this route that always delivers privately
	// to the message author, regardless of where the message came from.
	Direct() Route
}
