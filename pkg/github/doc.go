// Package github provides the GitHub integration for holdsync.
// It wraps the issue-listing and label-update API calls behind a small
// interface and implements the reconciliation logic that keeps the
// sync-hold label on each open issue in line with the published
// distro sync status.
package github
