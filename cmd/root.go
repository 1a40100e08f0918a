// Package cmd wires the gh-label-sync command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keptn-contrib/gh-label-sync/internal/logger"
	"github.com/keptn-contrib/gh-label-sync/internal/version"
)

var (
	cfgFile string
	verbose bool
	appLog  logger.Logger
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gh-label-sync",
		Short: "Synchronize a canonical label set across GitHub repositories",
		Long: `gh-label-sync reconciles the labels of one or more GitHub repositories
against a canonical label set: missing labels are created and labels matched
by name or alias are renamed, recolored, and redescribed. With --dry-run the
computed plan is written to a JSON file per repository instead of being
applied.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "labels.yml", "path to the label configuration file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
