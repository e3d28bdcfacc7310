// Package show provides the show command.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/internal/cmd/table"
)

// NewCommand creates the show command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id|name>",
		GroupID: "records",
		Short:   "Show one record",
		Args:    cobra.ExactArgs(1),
		Example: `  figurines show 3
  figurines show "gandalf the grey" -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			rec, err := client.Lookup(args[0])
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, table.RecordDetails(rec), rec)
		},
	}
}
