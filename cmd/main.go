package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	serveCommand := serveCmd()
	app := &cli.App{
		Name:  "shield",
		Usage: "Sentinel Shield: password vault, notes and shopping lists behind a cookie session",
		Commands: []*cli.Command{
			serveCommand,
			migrateCmd(),
			hashPasswordCmd(),
		},
		// Running without a command starts the server.
		Action: serveCommand.Action,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
}
