package cmd

import (
	"context"

	"github.com/bernd/ariabox/tui"
	"github.com/urfave/cli/v3"
)

const (
	debugFlag  = "debug"
	configFlag = "config"
	fileFlag   = "file"
	widgetFlag = "widget"
)

func widgetNameFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     widgetFlag,
		Aliases:  []string{"w"},
		Usage:    "Name of the widget to use",
		Required: required,
	}
}

func RootCommand() *cli.Command {
	return &cli.Command{
		Name:            "ariabox",
		Usage:           "Headless accessible widget engine",
		Description:     "Keys in, semantics out.",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Enable debug output",
			},
			&cli.StringFlag{
				Name:  configFlag,
				Usage: "Global config file (default: $XDG_CONFIG_HOME/ariabox/config.yaml)",
			},
			&cli.StringFlag{
				Name:    fileFlag,
				Aliases: []string{"f"},
				Usage:   "Widget definitions file (default: ./widgets.yaml)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			tui.SetDebug(cmd.Bool(debugFlag))
			return ctx, nil
		},
		Commands: []*cli.Command{
			// Order matters here!
			DemoCommand(),
			ValidateCommand(),
			KeysCommand(),
			InitCommand(),
			AddCommand(),
		},
	}
}
