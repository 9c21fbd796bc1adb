package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/heraldbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"HERALD_RUNTIME_PATH" envDefault:".herald"`

	// Names the bot answers to in shared conversations.
	Names []string `env:"HERALD_NAMES" envSeparator:"," envDefault:"herald"`

	// How long a squelched conversation stays muted.
	SquelchWindow time.Duration `env:"HERALD_SQUELCH_WINDOW" envDefault:"10m"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Dispatch journal (sqlite)
	EnableJournal bool `env:"ENABLE_JOURNAL" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "herald.db")
}
