package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"holdsync/pkg/config"
	"holdsync/pkg/github"
	"holdsync/pkg/status"
)

var (
	syncDryRun    bool
	syncStatusURL string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile sync-hold labels on open issues",
	Long: `Reconcile the sync-hold label on every open issue of the target
repository against the published distro sync status.

The bot fetches the status YAML from the configured repository path,
builds a distro → in-sync-hold map, and compares each open issue's
labels against it. An issue tagged with a distro that is in sync hold
gets the hold label added; an issue tagged with a distro that is not
gets it removed. Issues that are already correct are left untouched.

Every open issue must carry exactly one distro label. An issue with no
distro label, or more than one, aborts the run.

Configuration is read from the environment (a .env file is honored):
  GITHUB_REPO_ORG                   repository organization
  GITHUB_REPO_NAME                  repository name
  GITHUB_REPO_BRANCH_NAME           branch hosting the status file
  GITHUB_REPO_PATH_TO_SYNC_STATUS   path of the status YAML file
  GITHUB_PERSONAL_ACCESS_TOKEN      token with repo scope

Optional:
  HOLDSYNC_HOLD_LABEL               hold label name (default in_sync_hold)
  HOLDSYNC_HTTP_TIMEOUT             request timeout (default 30s)

Examples:
  # Reconcile labels
  holdsync sync

  # Preview changes without applying them
  holdsync sync --dry-run

  # Load the status document from an explicit URL
  holdsync sync --status-url http://localhost:8080/sync-status.yaml`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Preview label changes without applying them")
	syncCmd.Flags().StringVar(&syncStatusURL, "status-url", "", "Fetch the status document from this URL instead of the configured repository path")
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()

	url := syncStatusURL
	if url == "" {
		url = status.RawContentURL(cfg.RepoOrg, cfg.RepoName, cfg.RepoBranch, cfg.StatusPath)
	}

	fmt.Printf("🔍 Loading sync status from %s\n", url)
	loader := status.NewLoader(cfg.HTTPTimeout)
	statuses, err := loader.Load(ctx, url)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Loaded sync status for %d distros\n", len(statuses))

	client := github.NewClient(cfg.Token, cfg.HTTPTimeout)
	user, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate with GitHub: %w", err)
	}
	fmt.Printf("✓ Authenticated as %s\n", user)

	reconciler := github.NewReconciler(client, cfg.RepoOrg, cfg.RepoName, cfg.HoldLabel)
	changes, err := reconciler.Plan(ctx, statuses)
	if err != nil {
		return err
	}

	displayPlan(changes, cfg.HoldLabel)

	if syncDryRun || len(changes) == 0 {
		return nil
	}

	if err := reconciler.Apply(ctx, changes); err != nil {
		return err
	}

	fmt.Printf("✓ Applied %d label update(s)\n", len(changes))
	return nil
}

// displayPlan shows the planned label changes in a human-readable format
func displayPlan(changes []github.LabelChange, holdLabel string) {
	if syncDryRun {
		fmt.Printf("\n🔍 Dry-run mode: showing planned label changes\n")
	}

	if len(changes) == 0 {
		fmt.Printf("✓ All issues are labeled correctly, nothing to do\n")
		return
	}

	for _, change := range changes {
		switch change.Type {
		case github.ChangeTypeAdd:
			fmt.Printf("  + Issue #%d (%s): add %q, distro %s is in sync hold\n",
				change.Issue.Number, change.Issue.Title, holdLabel, change.Distro)
		case github.ChangeTypeRemove:
			fmt.Printf("  - Issue #%d (%s): remove %q, distro %s is no longer in sync hold\n",
				change.Issue.Number, change.Issue.Title, holdLabel, change.Distro)
		}
	}

	fmt.Printf("\n%d label change(s) planned\n", len(changes))
}
