package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keptn-contrib/gh-label-sync/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "gh-label-sync %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.Date)
		},
	}
}
