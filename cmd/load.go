package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/tui"
	"github.com/bernd/ariabox/widget"
	"github.com/urfave/cli/v3"
)

var errNoWidgets = errors.New("no widgets defined")

// paths resolves the global config and widgets file from the flags.
func paths(cmd *cli.Command) (string, string, error) {
	global := cmd.String(configFlag)
	if global == "" {
		global = config.DefaultGlobalPath()
	}
	file := cmd.String(fileFlag)
	if file == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		file = config.DefaultWidgetsPath(wd)
	}
	return global, file, nil
}

// loadConfig loads and validates both files. It fails when the widgets
// file defines nothing.
func loadConfig(cmd *cli.Command) (*config.Config, string, error) {
	global, file, err := paths(cmd)
	if err != nil {
		return nil, "", err
	}
	tui.Debug("loading %s and %s", global, file)

	cfg, err := config.Load(global, file)
	if err != nil {
		return nil, file, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, file, fmt.Errorf("invalid configuration:\n%w", err)
	}
	if len(cfg.Widgets.Widgets) == 0 {
		return nil, file, fmt.Errorf("%w in %s (run 'ariabox init')", errNoWidgets, file)
	}
	return cfg, file, nil
}

// selectWidgets builds every widget, or only the named one.
func selectWidgets(cfg *config.Config, name string, opts widget.Options) ([]widget.Widget, error) {
	defs := cfg.Merge()
	if name != "" {
		def, ok := config.FindWidget(defs, name)
		if !ok {
			return nil, fmt.Errorf("widget %q not found", name)
		}
		defs = []config.WidgetDef{def}
	}
	return widget.BuildAll(defs, opts)
}
