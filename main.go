package main

import (
	"context"
	"os"

	"github.com/bernd/ariabox/cmd"
	"github.com/bernd/ariabox/tui"
)

func main() {
	app := cmd.RootCommand()

	if err := app.Run(context.Background(), os.Args); err != nil {
		tui.Error("%v", err)
		os.Exit(1)
	}
}
