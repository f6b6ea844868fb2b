package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/sentinelshield/shield/internal/auth"
	database "github.com/sentinelshield/shield/internal/core"
)

func migrateCmd() *cli.Command {
	var seed bool
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "seed",
				Usage:       "Insert the demo user and sample data",
				Destination: &seed,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pool, err := database.Connect(c.Context, cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			if err := database.NewInitializer(pool, seed).Run(c.Context); err != nil {
				return err
			}
			log.Info().Bool("seed", seed).Msg("Migrations applied")
			return nil
		},
	}
}

func hashPasswordCmd() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt digest for a password",
		ArgsUsage: "<password>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one password argument")
			}
			digest, err := auth.NewHasher(auth.RegistrationCost).Hash(c.Args().First())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, digest)
			return err
		},
	}
}
