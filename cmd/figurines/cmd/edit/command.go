// Package edit provides the edit command.
package edit

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/alerts"
	"github.com/agentstation/figurines/internal/cmd/constants"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
)

type flags struct {
	name       string
	image      string
	tags       []string
	addTags    []string
	removeTags []string
	clearTags  bool
}

// NewCommand creates the edit command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:     "edit <id|name>",
		GroupID: "records",
		Short:   "Rename, retag or replace the image of a record",
		Long: `Edit changes an existing record. Fields that are not given keep their
current value. A new image replaces both stored files; the old files are
removed once the collection has been saved.`,
		Args: cobra.ExactArgs(1),
		Example: `  figurines edit 3 --name "Gandalf the White"
  figurines edit gandalf --image white.jpg
  figurines edit 3 --add-tag istari --remove-tag grey
  figurines edit 3 --clear-tags --tag wizard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			rec, err := client.Lookup(args[0])
			if err != nil {
				return err
			}

			changed := cmd.Flags().Changed("name") || f.image != "" ||
				cmd.Flags().Changed("tag") || len(f.addTags) > 0 ||
				len(f.removeTags) > 0 || f.clearTags
			if !changed {
				return errors.NewValidationError("flags", nil,
					"nothing to change: use --name, --image or a tag flag")
			}

			name := rec.Name
			if cmd.Flags().Changed("name") {
				name = f.name
			}

			var leftovers []*alerts.Alert
			client.OnCleanupWarning(func(_ *collection.Record, err error) {
				leftovers = append(leftovers, alerts.Cleanup(err))
			})

			updated, err := client.Edit(rec.ID, name, f.image, f.resolveTags(rec.Tags))
			if err != nil {
				return err
			}
			stderr := alerts.NewFormatWriter(cmd.ErrOrStderr(), output.FormatTable)
			for _, a := range leftovers {
				if err := stderr.WriteAlert(a); err != nil {
					return err
				}
			}

			format := output.DetectFormat(app.OutputFormat())
			if !constants.IsTable(string(format)) {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), updated)
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).
				WriteAlert(alerts.NewSuccess(fmt.Sprintf("Updated %q (id %d)", updated.Name, updated.ID)))
		},
	}

	cmd.Flags().StringVarP(&f.name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "Replacement image")
	cmd.Flags().StringArrayVarP(&f.tags, "tag", "t", nil, "Replace the tags with these (repeatable)")
	cmd.Flags().StringArrayVar(&f.addTags, "add-tag", nil, "Tag to add (repeatable)")
	cmd.Flags().StringArrayVar(&f.removeTags, "remove-tag", nil, "Tag to remove (repeatable)")
	cmd.Flags().BoolVar(&f.clearTags, "clear-tags", false, "Remove all tags before applying the others")
	_ = cmd.MarkFlagFilename("image", "jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff", "webp")

	return cmd
}

// resolveTags applies the tag flags to current, in the order clear, replace,
// add, remove.
func (f *flags) resolveTags(current []string) []string {
	r := &collection.Record{Tags: slices.Clone(current)}
	if f.clearTags {
		r.Tags = nil
	}
	if len(f.tags) > 0 {
		r.Tags = nil
		for _, t := range f.tags {
			r.AddTag(t)
		}
	}
	for _, t := range f.addTags {
		r.AddTag(t)
	}
	for _, t := range f.removeTags {
		r.RemoveTag(t)
	}
	return collection.NormalizeTags(r.Tags)
}
