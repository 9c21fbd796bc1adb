package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/heraldbot/internal/config"
	"github.com/sandevgo/heraldbot/internal/dispatch"
	"github.com/sandevgo/heraldbot/internal/plugin"
	"github.com/sandevgo/heraldbot/internal/storage/sqlite"
	"github.com/sandevgo/heraldbot/internal/transport/cli"
	"github.com/sandevgo/heraldbot/internal/transport/telegram"
	"github.com/sandevgo/heraldbot/pkg/log"
	"github.com/sandevgo/heraldbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Dispatch journal
	engineCfg := dispatch.Config{
		Names:         appCfg.Names,
		SquelchWindow: appCfg.SquelchWindow,
	}
	var journalRepo *sqlite.JournalRepo
	if appCfg.EnableJournal {
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize storage")
		}
		services = append(services, srv.NewCleanup(db.Close))

		journalRepo = sqlite.NewJournalRepo(db)
		engineCfg.Journal = journalRepo
	}

	// 3. Dispatch engine and plugins
	engine := dispatch.New(engineCfg)
	plugin.RegisterBuiltins(engine, appCfg.Names)
	if journalRepo != nil {
		plugin.RegisterHistory(engine, journalRepo)
	}

	// 4. Transports
	if appCfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, engine)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram transport")
		}
		services = append(services, bot)
	}
	if appCfg.EnableCLI {
		rl, err := cli.NewReadLine(engine, appCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize console transport")
		}
		services = append(services, rl)
	}

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
