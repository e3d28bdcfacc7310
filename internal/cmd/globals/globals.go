// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds the global flags shared by all commands.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags registers the global flags on the root command, storing values in
// flags.
func AddFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "",
		"output format: table, json, yaml, wide")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"minimal output (shortcut for --log-level=warn)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"verbose output (shortcut for --log-level=debug)")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"disable colored output")

	// --output is accepted as a hidden alias of --format
	cmd.PersistentFlags().StringVar(&flags.Format, "output", "", "")
	_ = cmd.PersistentFlags().MarkHidden("output")
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	format, _ := root.PersistentFlags().GetString("format")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}
}
