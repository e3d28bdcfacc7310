package app

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/figurines/internal/cmd/globals"
	"github.com/agentstation/figurines/internal/cmd/output"
	"github.com/agentstation/figurines/pkg/errors"
)

// Execute runs the figurines CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "figurines",
		Short:   "Figurine collection cataloguer",
		Version: a.version,
		Long: `Figurines keeps a catalogue of a figurine collection: one record per
figurine with a name, tags, a full-size photo and a thumbnail.

Records live in data/collection.json under the project root. Images are
copied into images/full and thumbnails are written to images/thumbnails.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "records",
		Title: "Record Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "collection",
		Title: "Collection Commands:",
	})

	var flags globals.Flags
	globals.AddFlags(rootCmd, &flags)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.figurines.yaml)")
	rootCmd.PersistentFlags().String("root", "", "project root holding data/ and images/ (default \".\")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("figurines {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := loadConfig(viper.New(), configFile)
		if err != nil {
			return errors.NewConfigError("config", "could not read "+configFile, err)
		}
		a.config = config
	}

	flags := globals.Parse(cmd)
	if _, err := output.ParseFormat(flags.Format); err != nil {
		return errors.NewValidationError("format", flags.Format, err.Error())
	}
	a.config.UpdateFromFlags(
		flags.Verbose,
		flags.Quiet,
		flags.NoColor,
		flags.Format,
		mustGetString(cmd, "log-level"),
		mustGetString(cmd, "root"),
	)
	if a.config.NoColor {
		color.NoColor = true
	}

	return a.openLogger()
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
