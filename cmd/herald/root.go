package main

import (
	"context"
	"os"

	"github.com/sandevgo/heraldbot/internal/config"
	"github.com/sandevgo/heraldbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "HeraldBot — a chat bot message dispatcher",
	Long:  `HeraldBot listens on chat transports and dispatches messages to registered commands and listeners.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
