package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/swoga/huawei-exporter/version"
)

var (
	log      zerolog.Logger
	logLevel string
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:           "huawei-exporter",
	Short:         "Extracts device information and connected devices from a Huawei router's admin pages.",
	Version:       fmt.Sprintf("%s (%s)", version.Version, version.Revision),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log.level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Shortcut for --log.level=debug")
	rootCmd.AddCommand(scrapeCmd, serveCmd)
}

func setupLogger() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
