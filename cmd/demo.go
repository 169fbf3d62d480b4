package cmd

import (
	"context"
	"fmt"

	"github.com/bernd/ariabox/tui"
	"github.com/bernd/ariabox/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Run the defined widgets in the terminal",
		Flags: []cli.Flag{widgetNameFlag(false)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !tui.IsTerminal() {
				return fmt.Errorf("demo needs an interactive terminal")
			}
			cfg, file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var win *tui.Window
			opts := widget.Options{
				OnActivate: func(name, value string) {
					if win != nil {
						win.SetFlash(fmt.Sprintf("%s: %s", name, value))
					}
				},
			}
			widgets, err := selectWidgets(cfg, cmd.String(widgetFlag), opts)
			if err != nil {
				return err
			}

			vp := cfg.Global.Viewport
			screen, err := newDemoScreen(file, widgets, vp.MinBuffer, vp.MaxBuffer)
			if err != nil {
				return err
			}
			win = tui.NewWindow(screen.header(), screen)
			p := tea.NewProgram(win, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("demo UI: %w", err)
			}
			return nil
		},
	}
}
