// Package remove provides the remove command.
package remove

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/figurines/internal/appcontext"
	"github.com/agentstation/figurines/internal/cmd/alerts"
	"github.com/agentstation/figurines/internal/cmd/constants"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/pkg/collection"
)

// NewCommand creates the remove command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id|name>",
		GroupID: "records",
		Short:   "Delete a record and its images",
		Aliases: []string{"rm", "delete"},
		Args:    cobra.ExactArgs(1),
		Example: `  figurines remove 3
  figurines rm "Gandalf" --yes`,
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
			writer := alerts.NewFormatWriter(cmd.OutOrStdout(), format)

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
					fmt.Sprintf("Delete %q (id %d) and its images?", rec.Name, rec.ID))
				if err != nil {
					return err
				}
				if !ok {
					return writer.WriteAlert(alerts.NewInfo("Nothing deleted"))
				}
			}

			var leftovers []*alerts.Alert
			client.OnCleanupWarning(func(_ *collection.Record, err error) {
				leftovers = append(leftovers, alerts.Cleanup(err))
			})

			removed, err := client.Delete(rec.ID)
			if err != nil {
				return err
			}
			if err := warn(cmd.ErrOrStderr(), leftovers); err != nil {
				return err
			}

			if !constants.IsTable(string(format)) {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), removed)
			}
			return writer.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Deleted %q (id %d)", removed.Name, removed.ID)))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// warn prints cleanup warnings as text so structured stdout stays parseable.
func warn(w io.Writer, leftovers []*alerts.Alert) error {
	writer := alerts.NewFormatWriter(w, output.FormatTable)
	for _, a := range leftovers {
		if err := writer.WriteAlert(a); err != nil {
			return err
		}
	}
	return nil
}

// confirm asks a yes/no question. Anything other than y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, err
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
