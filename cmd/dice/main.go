/*
Package main defines a CLI for the dice chat renderer.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rollforge/dicechat"
	"github.com/rollforge/dicechat/cmd/dice/command"
	"github.com/urfave/cli"
)

func init() {
	dice.MaxRequestRolls = 10000
}

func main() {
	cmd := cli.NewApp()
	cmd.Name = "dice"
	cmd.Usage = "dice chat expression roller"
	cmd.Version = "0.0.1"

	// globalFlags should be set up so that they can be used anywhere in the
	// command
	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:   "format",
			Value:  "",
			Usage:  "output format",
			EnvVar: "FORMAT",
		},
		&cli.StringFlag{
			Name:   "field",
			Value:  "",
			Usage:  "output specific field (unimplemented)",
			EnvVar: "FIELD",
		},
	}

	httpFlags := []cli.Flag{
		&cli.StringFlag{
			Name:   "http",
			Value:  ":6436", // hex("d6")
			Usage:  "HTTP service address",
			EnvVar: "HTTP",
		},
		&cli.StringFlag{
			Name:   "config",
			Value:  "",
			Usage:  "path to a server config YAML file",
			EnvVar: "DICE_CONFIG",
		},
	}

	cmd.Commands = []cli.Command{
		{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "render a chat message, evaluating every [[equation]] it contains",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.EvalCommand(c)
			},
		},
		{
			Name:  "repl",
			Usage: "enter a REPL mode",
			Flags: globalFlags,
			Action: func(c *cli.Context) error {
				return command.REPLCommand(c)
			},
		},
		{
			Name:    "roll",
			Aliases: []string{"r"},
			Usage:   "evaluate a single dice expression",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.RollCommand(c)
			},
		},
		{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "start the dice chat HTTP/WebSocket server",
			Flags:   httpFlags,
			Action: func(c *cli.Context) error {
				return command.ServerCommand(c)
			},
		},
	}

	sort.Sort(cli.FlagsByName(cmd.Flags))
	sort.Sort(cli.CommandsByName(cmd.Commands))

	err := cmd.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
