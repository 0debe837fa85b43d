package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardid/cmd/app/commands"
	"github.com/allisson/cardid/internal/app"
	"github.com/allisson/cardid/internal/card/input"
	"github.com/allisson/cardid/internal/config"
)

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "classify",
			Usage:     "Identify the card type of one or more card numbers",
			ArgsUsage: "<number> [number...] | -",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunClassify(
					ctx,
					cardUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "classify-file",
			Usage: "Classify every card number of a text, CSV or Excel (.xlsx) file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Input file (.txt, .csv, .xlsx or .xlsm)",
				},
				&cli.IntFlag{
					Name:  "column",
					Value: 0,
					Usage: "Zero based column holding card numbers (CSV and Excel)",
				},
				&cli.BoolFlag{
					Name:  "skip-header",
					Value: false,
					Usage: "Skip the first row (CSV and Excel, per sheet)",
				},
				&cli.StringFlag{
					Name:  "sheet",
					Usage: "Only read this sheet (Excel). Empty reads every sheet",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunClassifyFile(
					ctx,
					cardUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					input.Options{
						Column:     int(cmd.Int("column")),
						SkipHeader: cmd.Bool("skip-header"),
						Sheet:      cmd.String("sheet"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-card-types",
			Usage: "List the catalog card types in priority order",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunListCardTypes(ctx, cardUseCase, commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
		{
			Name:  "check-digit",
			Usage: "Compute the Luhn check digit that completes a payload",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "payload",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Digits without the check digit",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cardUseCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckDigit(
					ctx,
					cardUseCase,
					commands.DefaultIO().Writer,
					cmd.String("payload"),
					cmd.String("format"),
				)
			},
		},
	}
}
