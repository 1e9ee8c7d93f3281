package github

import (
	"context"
	"fmt"
)

// reconciler implements the Reconciler interface
type reconciler struct {
	client    APIClient
	owner     string
	repo      string
	holdLabel string
}

// NewReconciler creates a new reconciler for the given repository.
// holdLabel is the name of the label that marks a sync hold.
func NewReconciler(client APIClient, owner, repo, holdLabel string) Reconciler {
	return &reconciler{
		client:    client,
		owner:     owner,
		repo:      repo,
		holdLabel: holdLabel,
	}
}

// Plan lists the open issues of the repository and computes the label
// changes needed to make each issue's hold label match the desired
// state in statuses. Issues that are already correct produce no change.
func (r *reconciler) Plan(ctx context.Context, statuses map[string]bool) ([]LabelChange, error) {
	issues, err := r.client.ListOpenIssues(ctx, r.owner, r.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list open issues: %w", err)
	}

	var changes []LabelChange
	for _, issue := range issues {
		change, err := r.planIssue(issue, statuses)
		if err != nil {
			return nil, err
		}
		if change != nil {
			changes = append(changes, *change)
		}
	}

	return changes, nil
}

// planIssue computes the label change for a single issue, or nil if the
// issue is already labeled correctly
func (r *reconciler) planIssue(issue Issue, statuses map[string]bool) (*LabelChange, error) {
	distro, err := r.resolveDistro(issue, statuses)
	if err != nil {
		return nil, err
	}

	inSync := statuses[distro]
	labeled := containsLabel(issue.Labels, r.holdLabel)

	if inSync == labeled {
		return nil, nil
	}

	change := &LabelChange{
		Issue:  issue,
		Distro: distro,
		Before: issue.Labels,
	}

	if inSync {
		change.Type = ChangeTypeAdd
		change.After = append(append([]string{}, issue.Labels...), r.holdLabel)
	} else {
		change.Type = ChangeTypeRemove
		change.After = removeLabel(issue.Labels, r.holdLabel)
	}

	return change, nil
}

// resolveDistro finds the issue's distro label by scanning its labels
// in order against the known distro names. Exactly one match is
// required; zero or multiple matches violate the labeling invariant.
func (r *reconciler) resolveDistro(issue Issue, statuses map[string]bool) (string, error) {
	var matches []string
	for _, label := range issue.Labels {
		if _, ok := statuses[label]; ok && !containsLabel(matches, label) {
			matches = append(matches, label)
		}
	}

	switch len(matches) {
	case 0:
		return "", &DistroLabelError{Issue: issue, Err: ErrNoDistroLabel}
	case 1:
		return matches[0], nil
	default:
		return "", &DistroLabelError{Issue: issue, Matches: matches, Err: ErrAmbiguousDistroLabel}
	}
}

// Apply submits the planned label changes, one full-set replacement per
// issue, in plan order. The first failure aborts the run; changes
// already applied stay applied.
func (r *reconciler) Apply(ctx context.Context, changes []LabelChange) error {
	for _, change := range changes {
		if err := r.client.ReplaceIssueLabels(ctx, r.owner, r.repo, change.Issue.Number, change.After); err != nil {
			return fmt.Errorf("failed to update labels on issue #%d: %w", change.Issue.Number, err)
		}
	}
	return nil
}

func containsLabel(labels []string, name string) bool {
	for _, label := range labels {
		if label == name {
			return true
		}
	}
	return false
}

// removeLabel returns labels without any occurrence of name
func removeLabel(labels []string, name string) []string {
	result := make([]string, 0, len(labels))
	for _, label := range labels {
		if label != name {
			result = append(result, label)
		}
	}
	return result
}
