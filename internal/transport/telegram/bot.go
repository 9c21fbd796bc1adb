package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/heraldbot/internal/config"
	"github.com/sandevgo/heraldbot/internal/dispatch"
	"github.com/sandevgo/heraldbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	engine *dispatch.Engine
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	engine *dispatch.Engine,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		engine: engine,
		sender: newSender(b),
	}

	// Hand the signal-aware context with logger to every update handler.
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only serve the owner when an owner is configured
	if cfg.OwnerID != 0 {
		b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
			return func(c tele.Context) error {
				if c.Sender().ID != cfg.OwnerID {
					return nil // Ignore unauthorized users
				}
				return next(c)
			}
		})
	}

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram transport")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	route := newRoute(b.sender, c.Chat(), c.Sender())
	b.engine.HandleMessage(ctx, route, c.Text())
	return nil
}
