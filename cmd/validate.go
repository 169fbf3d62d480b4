package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bernd/ariabox/tui"
	"github.com/bernd/ariabox/widget"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type widgetReport struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Advisories []string `yaml:"advisories"`
}

type validateReport struct {
	File    string         `yaml:"file"`
	Widgets []widgetReport `yaml:"widgets"`
}

func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check widget definitions and report accessibility advisories",
		Flags: []cli.Flag{
			widgetNameFlag(false),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text or yaml",
				Value: "text",
				Validator: func(s string) error {
					if s != "text" && s != "yaml" {
						return fmt.Errorf("unknown format %q", s)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, file, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			widgets, err := selectWidgets(cfg, cmd.String(widgetFlag), widget.Options{})
			if err != nil {
				return err
			}

			report := buildReport(file, widgets)
			out := cmd.Root().Writer
			if cmd.String("format") == "yaml" {
				return writeYAMLReport(out, report)
			}
			writeTextReport(out, report)
			return nil
		},
	}
}

func buildReport(file string, widgets []widget.Widget) validateReport {
	r := validateReport{File: file}
	for _, w := range widgets {
		advisories := w.Validate()
		if advisories == nil {
			advisories = []string{}
		}
		r.Widgets = append(r.Widgets, widgetReport{Name: w.Name(), Kind: w.Kind(), Advisories: advisories})
	}
	return r
}

func writeTextReport(out io.Writer, r validateReport) {
	total := 0
	for _, w := range r.Widgets {
		tui.StatusTo(out, "Checked", "%s %q", w.Kind, w.Name)
		for _, a := range w.Advisories {
			tui.AdviceTo(out, "%s", a)
		}
		total += len(w.Advisories)
	}
	tui.StatusTo(out, "Done", "%d widgets, %d advisories in %s", len(r.Widgets), total, r.File)
}

func writeYAMLReport(out io.Writer, r validateReport) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
