package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bernd/ariabox/widget"
	"github.com/urfave/cli/v3"
)

func KeysCommand() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Print a widget's key dispatch table in match order",
		Flags: []cli.Flag{widgetNameFlag(true)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			widgets, err := selectWidgets(cfg, cmd.String(widgetFlag), widget.Options{})
			if err != nil {
				return err
			}
			writeBindings(cmd.Root().Writer, widgets[0])
			return nil
		},
	}
}

func writeBindings(out io.Writer, w widget.Widget) {
	orientation := "vertical"
	if w.Horizontal() {
		orientation = "horizontal"
	}
	fmt.Fprintf(out, "%s %q (%s)\n", w.Kind(), w.Name(), orientation)
	for i, b := range w.Bindings() {
		fmt.Fprintf(out, "%3d  %s\n", i+1, b)
	}
}
