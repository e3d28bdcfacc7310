// Package export provides the export command.
package export

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/constants"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/save"
)

// NewCommand creates the export command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "collection",
		Short:   "Write the collection document as JSON or YAML",
		Long: `Export writes the whole collection in the same shape as
data/collection.json. Use --format yaml for YAML. Without --output-file the
document is written to stdout.`,
		Args: cobra.NoArgs,
		Example: `  figurines export > backup.json
  figurines export --format yaml --output-file collection.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := app.OutputFormat()
			if constants.IsTable(format) {
				format = constants.FormatJSON
			}
			f, err := save.ParseFormat(format)
			if err != nil {
				return errors.WrapValidation("format", err)
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			opts := []save.Option{save.WithFormat(f)}
			if outputFile != "" {
				opts = append(opts, save.WithPath(outputFile))
			} else {
				opts = append(opts, save.WithWriter(cmd.OutOrStdout()))
			}
			if err := client.Export(opts...); err != nil {
				return err
			}

			if outputFile != "" {
				app.Logger().Info().
					Str("path", outputFile).
					Str("format", f.String()).
					Int("records", len(client.Records())).
					Msg("Collection exported")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "Write to this file instead of stdout")

	return cmd
}
