package plugin

import (
	"context"
	"regexp"
	"strings"

	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/internal/dispatch"
	"github.com/sandevgo/heraldbot/pkg/log"
)

// RegisterBuiltins installs the stock commands and listeners every herald
// deployment ships with. names are the bot aliases the mention listener
// reacts to.
func RegisterBuiltins(e *dispatch.Engine, names []string) {
	e.RegisterCommand(core.Command{
		Name:    "ping",
		Usage:   "ping — check that the bot is alive",
		Trigger: core.MustTrigger(`(?i)^ping\b`),
		Handler: func(ctx context.Context, route core.Route, args []string) error {
			return route.Send(ctx, "pong")
		},
	})

	e.RegisterCommand(core.Command{
		Name:    "squelch",
		Usage:   "squelch — mute me in this conversation for a while",
		Core:    true,
		Trigger: core.MustTrigger(`(?i)^(?:squelch|mute)\b`),
		Handler: func(ctx context.Context, route core.Route, args []string) error {
			conversation := route.Conversation()
			if conversation == "" {
				return route.Send(ctx, "There is nothing to squelch in a direct chat.")
			}
			e.SetSquelch(conversation, true)
			// Confirm privately; the point of the command is silence.
			return route.Direct().Send(ctx, "Okay, keeping quiet over there for a while.")
		},
	})

	e.RegisterCommand(core.Command{
		Name:    "unsquelch",
		Usage:   "unsquelch — let me speak in this conversation again",
		Core:    true,
		Trigger: core.MustTrigger(`(?i)^(?:unsquelch|unmute)\b`),
		Handler: func(ctx context.Context, route core.Route, args []string) error {
			conversation := route.Conversation()
			if conversation == "" {
				return route.Send(ctx, "I was never squelched here.")
			}
			e.SetSquelch(conversation, false)
			return route.Send(ctx, "Speaking freely again.")
		},
	})

	e.RegisterCommand(core.Command{
		Name:    "help",
		Usage:   "help — list what I answer to",
		Trigger: core.MustTrigger(`(?i)^help\b`),
		Handler: func(ctx context.Context, route core.Route, args []string) error {
			var b strings.Builder
			b.WriteString("Here's what I answer to:\n")
			for _, cmd := range e.Commands() {
				if cmd.Usage == "" {
					continue
				}
				b.WriteString("- " + cmd.Usage + "\n")
			}
			return route.Send(ctx, b.String())
		},
	})

	if mention := mentionPattern(names); mention != nil {
		e.RegisterListener(core.Listener{
			Name:    "mention",
			Trigger: core.NewTrigger(mention),
			Handler: func(ctx context.Context, route core.Route, message string) (bool, error) {
				// Direct chats already answer every message as a command.
				if route.Conversation() == "" {
					return false, nil
				}
				return true, route.Send(ctx, "You called?")
			},
		})
	}

	// Matches a single character, so it sorts behind every real candidate
	// and never steals a message.
	e.RegisterListener(core.Listener{
		Name:    "activity",
		Trigger: core.MustTrigger(`\S`),
		Handler: func(ctx context.Context, route core.Route, message string) (bool, error) {
			log.FromCtx(ctx).Debug().
				Str("conversation", route.Conversation()).
				Int("len", len(message)).
				Msg("message seen")
			return false, nil
		},
	})
}

func mentionPattern(names []string) *regexp.Regexp {
	var quoted []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(name))
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
