package main

import (
	"fmt"
	"os"
	"shorecrew/internal/di"
	"shorecrew/internal/structures"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "shorecrew",
		Usage: "Beach-cleanup crew coordination daemon.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "mirror logs to the console",
			},
		},
		Action: func(c *cli.Context) error {
			flags := &structures.CliFlags{
				ConfigPath: c.String("config"),
				DebugMode:  c.Bool("debug"),
			}
			_, err := di.InitApp(flags)
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
