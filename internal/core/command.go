package core

import "context"

// CommandHandler runs a matched command. args is the tokenized text after
// the matched trigger. A non-nil error is a handler fault and is consumed by
// the per-message isolation boundary.
type CommandHandler func(ctx context.Context, route Route, args []string) error

// ListenerHandler reacts to a message a listener trigger matched. handled
// reports whether the message is conclusively dealt with; false lets the
// remaining candidate listeners run.
type ListenerHandler func(ctx context.Context, route Route, message string) (handled bool, err error)

// Command is a registered command spec. Immutable once registered.
type Command struct {
	Name    string
	Usage   string
	Trigger Trigger
	// Core commands keep working while their conversation is squelched.
	Core    bool
	Handler CommandHandler
}

// Listener is a registered listener spec. Immutable once registered.
type Listener struct {
	Name    string
	Trigger Trigger
	Handler ListenerHandler
}

// Journal records dispatch passes. Implementations must tolerate concurrent
// calls; the engine treats journaling as best-effort.
type Journal interface {
	Record(ctx context.Context, rec DispatchRecord) error
}

// JournalReader is the query side of the dispatch journal.
type JournalReader interface {
	Recent(ctx context.Context, conversation string, limit int) ([]DispatchRecord, error)
}
