package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/heraldbot/internal/config"
	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/internal/dispatch"
	"github.com/sandevgo/heraldbot/pkg/log"
)

// ReadLine is the local console transport. Every line is dispatched as a
// direct message.
type ReadLine struct {
	cfg    *config.AppConfig
	engine *dispatch.Engine
	rl     *readline.Instance
}

func NewReadLine(engine *dispatch.Engine, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		engine: engine,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("console chat started, type 'exit' to quit")

	route := newConsoleRoute(r.rl.Stdout())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		r.engine.HandleMessage(ctx, route, line)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	return r.rl.Close()
}

type consoleRoute struct {
	out io.Writer
}

func newConsoleRoute(out io.Writer) *consoleRoute {
	return &consoleRoute{out: out}
}

// Conversation is always empty: the console is a private chat.
func (r *consoleRoute) Conversation() string { return "" }

func (r *consoleRoute) Send(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(r.out, text)
	return err
}

// Direct is the console itself; there is no more private place to go.
func (r *consoleRoute) Direct() core.Route { return r }
