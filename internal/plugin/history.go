package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/internal/dispatch"
)

const historyLimit = 5

// RegisterHistory installs the history command on deployments that run with
// the dispatch journal enabled.
func RegisterHistory(e *dispatch.Engine, reader core.JournalReader) {
	e.RegisterCommand(core.Command{
		Name:    "history",
		Usage:   "history — recent dispatch outcomes for this conversation",
		Trigger: core.MustTrigger(`(?i)^history\b`),
		Handler: func(ctx context.Context, route core.Route, args []string) error {
			recs, err := reader.Recent(ctx, route.Conversation(), historyLimit)
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(recs) == 0 {
				return route.Send(ctx, "Nothing on record here yet.")
			}
			var b strings.Builder
			for _, rec := range recs {
				fmt.Fprintf(&b, "- %s `%s`\n", rec.Outcome, truncate(rec.Message, 48))
			}
			return route.Send(ctx, b.String())
		},
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
