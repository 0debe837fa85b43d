package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getCardCommands()...)
	return cmds
}

func formatFlag() cli.Flag {
	return formatFlagWithDefault("text")
}

func formatFlagWithDefault(value string) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   value,
		Usage:   "Output format: 'text' or 'json'",
	}
}
