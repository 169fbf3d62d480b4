package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/tui"
	"github.com/urfave/cli/v3"
)

func InitCommand() *cli.Command {
	return &cli.Command{
		Name:     "init",
		Usage:    "Write a starter widget definitions file",
		Category: "Utilities",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "kind",
				Usage: "Widget kinds to include (skips interactive selection)",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, file, err := paths(cmd)
			if err != nil {
				return err
			}
			if _, err := os.Stat(file); err == nil && !cmd.Bool("force") {
				return fmt.Errorf("%s already exists (use --force to overwrite)", file)
			}

			kinds := cmd.StringSlice("kind")
			switch {
			case len(kinds) > 0:
				for _, k := range kinds {
					if !slices.Contains(config.Kinds, k) {
						return fmt.Errorf("kind %q: %w", k, config.ErrUnknownKind)
					}
				}
				err = config.WriteStarter(file, kinds)
			case tui.IsTerminal():
				kinds, err = config.RunInit(file)
			default:
				kinds = config.Kinds
				err = config.WriteStarter(file, kinds)
			}
			if err != nil {
				return err
			}
			tui.StatusTo(cmd.Root().Writer, "Wrote", "%d widgets to %s", len(kinds), file)
			return nil
		},
	}
}

func AddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append an example widget of the given kind",
		Category:  "Utilities",
		ArgsUsage: "KIND",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Widget name (default: the example's name)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			kind := cmd.Args().First()
			def, ok := config.Starter(kind)
			if !ok {
				return fmt.Errorf("kind %q: %w (one of %v)", kind, config.ErrUnknownKind, config.Kinds)
			}
			if name := cmd.String("name"); name != "" {
				def.Name = name
			}
			_, file, err := paths(cmd)
			if err != nil {
				return err
			}
			if err := config.AppendWidget(file, def); err != nil {
				return err
			}
			tui.StatusTo(cmd.Root().Writer, "Added", "%s %q to %s", kind, def.Name, file)
			return nil
		},
	}
}
