// Package version provides the version command.
package version

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/globals"
)

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("figurines %s\n", app.Version())
			if globals.Parse(cmd).Verbose {
				cmd.Printf("  commit:   %s\n", app.Commit())
				cmd.Printf("  built:    %s\n", app.Date())
				cmd.Printf("  built by: %s\n", app.BuiltBy())
			}
		},
	}
}
