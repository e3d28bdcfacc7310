package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/cmd/figurines/cmd/add"
	"github.com/agentstation/figurines/cmd/figurines/cmd/edit"
	"github.com/agentstation/figurines/cmd/figurines/cmd/export"
	"github.com/agentstation/figurines/cmd/figurines/cmd/list"
	"github.com/agentstation/figurines/cmd/figurines/cmd/remove"
	"github.com/agentstation/figurines/cmd/figurines/cmd/show"
	"github.com/agentstation/figurines/cmd/figurines/cmd/tags"
	"github.com/agentstation/figurines/cmd/figurines/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Record commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(edit.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))

	// Collection commands
	rootCmd.AddCommand(tags.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
