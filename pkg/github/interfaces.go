package github

import "context"

// APIClient defines the interface for the GitHub API operations the
// reconciler depends on
type APIClient interface {
	// ListOpenIssues returns all open issues of the repository,
	// concatenated across pages. Pull requests are excluded.
	ListOpenIssues(ctx context.Context, owner, repo string) ([]Issue, error)

	// ReplaceIssueLabels replaces the full label set of an issue
	ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error

	// AuthenticatedUser returns the login of the token's user
	AuthenticatedUser(ctx context.Context) (string, error)
}

// Reconciler defines the interface for label reconciliation operations
type Reconciler interface {
	Plan(ctx context.Context, statuses map[string]bool) ([]LabelChange, error)
	Apply(ctx context.Context, changes []LabelChange) error
}
