// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/globals"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/internal/cmd/table"
	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
)

// NewCommand creates the list command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "records",
		Short:   "List records in the collection",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  figurines list                     # All records, by name
  figurines list --sort recent       # Most recently modified first
  figurines list --tag elf           # Records tagged "elf"
  figurines list --search gand -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, globals.ParseList(cmd))
		},
	}

	globals.AddListFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *globals.ListFlags) error {
	criterion, err := collection.ParseSortCriterion(flags.Sort)
	if err != nil {
		return errors.WrapValidation("sort", err)
	}
	if flags.Limit < 0 {
		return errors.NewValidationError("limit", flags.Limit, "limit must not be negative")
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	client.Sort(criterion)
	records := client.Filter(collection.Filter{Tag: flags.Tag, Search: flags.Search})
	if flags.Limit > 0 && len(records) > flags.Limit {
		records = records[:flags.Limit]
	}

	app.Logger().Debug().
		Int("records", len(records)).
		Str("sort", criterion.String()).
		Msg("Listing records")

	format := output.DetectFormat(app.OutputFormat())
	tableData := table.RecordsToTableData(records, format == output.FormatWide)
	return output.Write(cmd.OutOrStdout(), format, tableData, records)
}
