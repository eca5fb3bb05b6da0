package main

import (
	"context"
	"os"
	"os/signal"

	"gitwrap.dev/gitwrap/internal/cli"
	"gitwrap.dev/gitwrap/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	tui.ConfigureColors()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		tui.NewSplog(os.Stderr).Error("%v", err)
		stop()
		os.Exit(1)
	}
}
