package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/pkg/log"
)

const replyFault = "Something went wrong while I was handling that."

type boundaryKey struct{}

// Boundary is the fault isolation scope for one inbound message. Handler
// errors and panics, whether from the synchronous dispatch pass or from
// goroutines started through Go while inside it, trip the boundary exactly
// once: the fault is logged with the offending message, journaled, and
// answered with a single generic failure reply. The rest of the process is
// untouched.
type Boundary struct {
	route        core.Route
	journal      core.Journal
	conversation string
	message      string
	once         sync.Once
}

func newBoundary(route core.Route, journal core.Journal, message string) *Boundary {
	return &Boundary{
		route:        route,
		journal:      journal,
		conversation: route.Conversation(),
		message:      message,
	}
}

func withBoundary(ctx context.Context, b *Boundary) context.Context {
	return context.WithValue(ctx, boundaryKey{}, b)
}

func boundaryFrom(ctx context.Context) *Boundary {
	b, _ := ctx.Value(boundaryKey{}).(*Boundary)
	return b
}

// Go runs fn on its own goroutine while keeping it attached to the fault
// boundary of the message it was started from. Handlers use it for work that
// outlives the dispatch pass.
func Go(ctx context.Context, fn func(ctx context.Context) error) {
	b := boundaryFrom(ctx)
	if b == nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.FromCtx(ctx).Error().Msgf("panic outside dispatch boundary: %v", r)
				}
			}()
			if err := fn(ctx); err != nil {
				log.FromCtx(ctx).Error().Err(err).Msg("error outside dispatch boundary")
			}
		}()
		return
	}
	go b.run(ctx, fn)
}

func (b *Boundary) run(ctx context.Context, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			b.trip(ctx, fmt.Errorf("handler panic: %v", r))
		}
	}()
	if err := fn(ctx); err != nil {
		b.trip(ctx, err)
	}
}

func (b *Boundary) trip(ctx context.Context, err error) {
	b.once.Do(func() {
		logger := log.FromCtx(ctx)
		logger.Error().Err(err).
			Str("conversation", b.conversation).
			Str("message", b.message).
			Msg("handler fault")

		if b.journal != nil {
			if jerr := b.journal.Record(ctx, core.DispatchRecord{
				Conversation: b.conversation,
				Message:      b.message,
				Outcome:      core.OutcomeFault,
				Detail:       err.Error(),
			}); jerr != nil {
				logger.Warn().Err(jerr).Msg("failed to journal fault")
			}
		}

		if serr := b.route.Send(ctx, replyFault); serr != nil {
			logger.Warn().Err(serr).Msg("failed to send fault reply")
		}
	})
}
