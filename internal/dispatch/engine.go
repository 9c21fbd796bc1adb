package dispatch

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/pkg/log"
)

const (
	replyUnknown   = "Sorry, I don't know that one. Say `help` for what I can do."
	replySquelched = "I got your command, but I've been squelched in that conversation for now."
)

// Config carries the engine's construction parameters.
type Config struct {
	// Names are the aliases the bot answers to; each becomes an address
	// prompt of the form "@name: " with the @ and : optional.
	Names         []string
	SquelchWindow time.Duration
	// Journal records dispatch passes. Nil disables journaling.
	Journal core.Journal
}

// Engine decides what an inbound message means: whether it addresses the
// bot, which command or listeners it matches, whether the conversation is
// squelched, and which handler runs. One synchronous dispatch pass per
// message, wrapped in a fault boundary.
type Engine struct {
	reg     *Registry
	squelch *Squelch
	prompts []*regexp.Regexp
	journal core.Journal
}

func New(cfg Config) *Engine {
	prompts := make([]*regexp.Regexp, 0, len(cfg.Names))
	for _, name := range cfg.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		prompts = append(prompts, regexp.MustCompile(`(?i)^@?`+regexp.QuoteMeta(name)+`:? `))
	}
	return &Engine{
		reg:     NewRegistry(),
		squelch: NewSquelch(cfg.SquelchWindow),
		prompts: prompts,
		journal: cfg.Journal,
	}
}

func (e *Engine) RegisterCommand(cmd core.Command) {
	e.reg.AddCommand(cmd)
}

func (e *Engine) RegisterListener(l core.Listener) {
	e.reg.AddListener(l)
}

// Commands returns the registered commands in registration order.
func (e *Engine) Commands() []core.Command {
	return e.reg.Commands()
}

// SetSquelch mutes or unmutes a conversation.
func (e *Engine) SetSquelch(conversation string, on bool) {
	e.squelch.Set(conversation, on)
}

// Squelched reports whether a conversation is currently muted.
func (e *Engine) Squelched(conversation string) bool {
	return e.squelch.Active(conversation)
}

// HandleMessage runs one full dispatch pass for an inbound message inside a
// fresh fault boundary. Transports call this for every (route, text) pair
// they receive.
func (e *Engine) HandleMessage(ctx context.Context, route core.Route, message string) {
	b := newBoundary(route, e.journal, message)
	ctx = withBoundary(ctx, b)
	b.run(ctx, func(ctx context.Context) error {
		return e.dispatch(ctx, route, message)
	})
}

func (e *Engine) dispatch(ctx context.Context, route core.Route, message string) error {
	logger := log.FromCtx(ctx)
	conversation := route.Conversation()
	text := strings.TrimSpace(message)

	// AddressCheck: direct messages are always commands; in a shared
	// conversation the message must open with an address prompt, which is
	// then stripped from the working text.
	working := text
	isCommand := conversation == ""
	if !isCommand {
		for _, p := range e.prompts {
			if loc := p.FindStringIndex(text); loc != nil {
				working = text[loc[1]:]
				isCommand = true
				break
			}
		}
	}

	squelched := e.squelch.Active(conversation)

	if isCommand {
		if m, ok := e.reg.MatchCommand(working, squelched); ok {
			logger.Debug().
				Str("command", m.Command.Name).
				Str("conversation", conversation).
				Msg("dispatching command")
			if err := m.Command.Handler(ctx, route, Tokenize(m.Rest)); err != nil {
				return fmt.Errorf("command %s: %w", m.Command.Name, err)
			}
			e.record(ctx, conversation, text, core.OutcomeCommand, m.Command.Name)
			return nil
		}
		if squelched {
			logger.Debug().
				Str("conversation", conversation).
				Msg("non-core commands suppressed while squelched")
		}
	}

	// Listeners see the original, unstripped text and run most-specific
	// match first until one reports the message handled.
	var handledBy string
	if !squelched {
		for _, cand := range e.reg.MatchListeners(text) {
			handled, err := cand.Listener.Handler(ctx, route, text)
			if err != nil {
				return fmt.Errorf("listener %s: %w", cand.Listener.Name, err)
			}
			if handled {
				handledBy = cand.Listener.Name
				break
			}
		}
	}

	// A message addressed to the bot always gets an answer, even when a
	// listener happened to react to it.
	if isCommand {
		e.record(ctx, conversation, text, core.OutcomeFallback, handledBy)
		var err error
		if squelched {
			err = route.Direct().Send(ctx, replySquelched)
		} else {
			err = route.Send(ctx, replyUnknown)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("failed to send fallback reply")
		}
		return nil
	}

	if handledBy != "" {
		e.record(ctx, conversation, text, core.OutcomeListener, handledBy)
	} else {
		e.record(ctx, conversation, text, core.OutcomeIgnored, "")
	}
	return nil
}

func (e *Engine) record(ctx context.Context, conversation, message string, outcome core.Outcome, detail string) {
	if e.journal == nil {
		return
	}
	rec := core.DispatchRecord{
		Conversation: conversation,
		Message:      message,
		Outcome:      outcome,
		Detail:       detail,
		CreatedAt:    time.Now(),
	}
	if err := e.journal.Record(ctx, rec); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to journal dispatch")
	}
}
