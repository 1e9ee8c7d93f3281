package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client with the provided token.
// The timeout applies to every API call made through the client.
func NewClient(token string, timeout time.Duration) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = timeout

	return &Client{
		client: github.NewClient(tc),
	}
}

// ListOpenIssues returns all open issues of the repository. Pagination
// is followed until exhausted with a page size of 100; pull requests,
// which the issues API also returns, are skipped.
func (c *Client) ListOpenIssues(ctx context.Context, owner, repo string) ([]Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allIssues []Issue
	for {
		issues, resp, err := c.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			return nil, WrapAPIError(err, fmt.Sprintf("issues for %s/%s", owner, repo))
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}

			labels := make([]string, 0, len(issue.Labels))
			for _, label := range issue.Labels {
				labels = append(labels, label.GetName())
			}

			allIssues = append(allIssues, Issue{
				Number: issue.GetNumber(),
				Title:  issue.GetTitle(),
				Labels: labels,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allIssues, nil
}

// ReplaceIssueLabels replaces the full label set of an issue
func (c *Client) ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	_, _, err := c.client.Issues.ReplaceLabelsForIssue(ctx, owner, repo, number, labels)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("labels for %s/%s#%d", owner, repo, number))
	}
	return nil
}

// AuthenticatedUser returns the login of the token's user
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", WrapAPIError(err, "authenticated user")
	}
	return user.GetLogin(), nil
}
