// Package main provides the entry point for the figurines CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/figurines/cmd/figurines/app"
	"github.com/agentstation/figurines/pkg/constants"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	app.ExitOnError(run())
}

func run() error {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		return err
	}
	defer func() {
		// the signal context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := application.Shutdown(ctx); err != nil {
			_, _ = os.Stderr.WriteString("shutdown: " + err.Error() + "\n")
		}
	}()

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	return application.Execute(ctx, os.Args[1:])
}
