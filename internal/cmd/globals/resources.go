package globals

import "github.com/spf13/cobra"

// ListFlags holds the flags that select and order records for listing.
type ListFlags struct {
	Sort   string
	Tag    string
	Search string
	Limit  int
}

// AddListFlags adds listing flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVarP(&flags.Sort, "sort", "s", "name-asc",
		"Sort order: name-asc, name-desc, recent, oldest")
	cmd.Flags().StringVarP(&flags.Tag, "tag", "t", "",
		"Only records carrying this tag")
	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Only records whose name contains this text")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// ParseList extracts listing flags from a command.
// The command must have had AddListFlags called on it, otherwise this will panic.
func ParseList(cmd *cobra.Command) *ListFlags {
	return &ListFlags{
		Sort:   mustGetString(cmd, "sort"),
		Tag:    mustGetString(cmd, "tag"),
		Search: mustGetString(cmd, "search"),
		Limit:  mustGetInt(cmd, "limit"),
	}
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
