package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardid/cmd/app/commands"
	"github.com/allisson/cardid/internal/app"
	"github.com/allisson/cardid/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "validate-catalog",
			Usage: "Check a card type catalog file and report every invalid definition",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Path to the catalog JSON file",
				},
				&cli.BoolFlag{
					Name:  "require-names",
					Value: true,
					Usage: "Reject card types without a name",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunValidateCatalog(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					cmd.Bool("require-names"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "export-catalog",
			Usage: "Print the active catalog (CATALOG_FILE or the built-in one)",
			Flags: []cli.Flag{formatFlagWithDefault("json")},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				catalog, err := container.Catalog()
				if err != nil {
					return err
				}

				return commands.RunExportCatalog(commands.DefaultIO().Writer, catalog, cmd.String("format"))
			},
		},
	}
}
