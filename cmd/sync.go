package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keptn-contrib/gh-label-sync/internal/config"
	"github.com/keptn-contrib/gh-label-sync/internal/github"
	"github.com/keptn-contrib/gh-label-sync/internal/label"
	"github.com/keptn-contrib/gh-label-sync/internal/sync"
)

func newSyncCmd() *cobra.Command {
	var (
		dryRun    bool
		token     string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "sync owner/repo [owner/repo...]",
		Short: "Reconcile repository labels against the configured label set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewConfig()
			if err := cfg.Load(cfgFile); err != nil {
				return fmt.Errorf("failed to load config %s: %w", cfgFile, err)
			}
			if token != "" {
				cfg.GitHub.Token = token
			}
			if outputDir != "" {
				cfg.Sync.OutputDir = outputDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			resolvedToken, source := config.GetGitHubToken(cfg)
			if resolvedToken == "" && !dryRun {
				appLog.Warn("no GitHub token configured, mutations will likely be rejected")
			} else if source != "" {
				appLog.Debug("using GitHub token", "source", source)
			}

			client := github.NewClient(resolvedToken,
				github.WithRetryStrategy(github.RetryStrategy{
					MaxAttempts:  cfg.GitHub.Retry.MaxAttempts,
					InitialDelay: cfg.GitHub.Retry.InitialDelay,
					MaxDelay:     cfg.GitHub.Retry.MaxDelay,
					Multiplier:   2.0,
					Jitter:       true,
				}),
			)

			var action sync.Action
			if dryRun {
				action = sync.NewDryRunWriter(afero.NewOsFs(), cfg.Sync.OutputDir, appLog)
			} else {
				action = sync.NewExecutor(client, appLog)
			}

			builder := label.NewPlanBuilder(label.NewMatcher(cfg.Generator()))
			engine := sync.NewEngine(client, builder, action, cfg.Labels, appLog)

			if err := engine.SyncAll(cmd.Context(), args); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d repositories in sync\n", len(args))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "write plan files instead of mutating repositories")
	cmd.Flags().StringVarP(&token, "token", "t", "", "GitHub API token (overrides config and GITHUB_TOKEN)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for dry-run plan files")

	return cmd
}
