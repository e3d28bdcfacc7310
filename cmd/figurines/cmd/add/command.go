// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/alerts"
	"github.com/agentstation/figurines/internal/cmd/constants"
	"github.com/agentstation/figurines/internal/cmd/output"
)

// NewCommand creates the add command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		image string
		tags  []string
	)

	cmd := &cobra.Command{
		Use:     "add <name>",
		GroupID: "records",
		Short:   "Add a record from an image",
		Long: `Add copies the image into images/full, writes a thumbnail into
images/thumbnails and appends a record to the collection.

The name must not match an existing record, ignoring case.`,
		Args: cobra.ExactArgs(1),
		Example: `  figurines add "Gandalf" --image ~/photos/gandalf.jpg
  figurines add "Legolas" --image legolas.png --tag elf --tag archer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			rec, err := client.Create(args[0], image, tags)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if !constants.IsTable(string(format)) {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), rec)
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).
				WriteAlert(alerts.NewSuccess(fmt.Sprintf("Created %q (id %d)", rec.Name, rec.ID)))
		},
	}

	cmd.Flags().StringVarP(&image, "image", "i", "", "Source image to import (required)")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag to attach (repeatable)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagFilename("image", "jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff", "webp")

	return cmd
}
