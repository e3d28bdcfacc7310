// Package tags provides the tags command.
package tags

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/internal/cmd/table"
)

// tagCount is the structured form of a tag row.
type tagCount struct {
	Tag     string `json:"tag" yaml:"tag"`
	Records int    `json:"records" yaml:"records"`
}

// NewCommand creates the tags command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		GroupID: "collection",
		Short:   "List every tag used in the collection",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			vocabulary := client.Tags()
			counts := client.Store().TagCounts()

			raw := make([]tagCount, len(vocabulary))
			for i, tag := range vocabulary {
				raw[i] = tagCount{Tag: tag, Records: counts[tag]}
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, table.TagsToTableData(vocabulary, counts), raw)
		},
	}
}
