// Package status loads the distro sync-status document that drives the
// reconciliation. The document is a YAML sequence of per-distro
// records, published as a raw file in a source repository.
package status

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// RawContentHost is the host serving raw repository files
const RawContentHost = "https://raw.githubusercontent.com"

// SyncStatus represents one distro's entry in the status document
type SyncStatus struct {
	Distro     string `yaml:"distro"`
	InSyncHold bool   `yaml:"in_sync_hold"`
}

// Loader fetches and parses the sync-status document
type Loader struct {
	httpClient *http.Client
}

// NewLoader creates a loader whose fetches time out after timeout
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RawContentURL builds the raw-content URL for a file in a repository:
// https://raw.githubusercontent.com/<org>/<repo>/<branch>/<path>
func RawContentURL(org, repo, branch, path string) string {
	return strings.Join([]string{RawContentHost, org, repo, branch, path}, "/")
}

// Load fetches the status document from url and folds it into a
// distro → in-sync-hold map. Any fetch or parse failure is terminal;
// there is no partial result.
func (l *Loader) Load(ctx context.Context, url string) (map[string]bool, error) {
	statuses, err := l.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return BuildStatusMap(statuses), nil
}

// fetch retrieves and parses the raw status document
func (l *Loader) fetch(ctx context.Context, url string) ([]SyncStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sync status from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch sync status from %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync status response: %w", err)
	}

	return ParseStatuses(body)
}

// ParseStatuses decodes the status document. The document must be
// valid UTF-8 and a top-level YAML sequence of {distro, in_sync_hold}
// mappings.
func ParseStatuses(data []byte) ([]SyncStatus, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("sync status document is not valid UTF-8")
	}

	var statuses []SyncStatus
	if err := yaml.Unmarshal(data, &statuses); err != nil {
		return nil, fmt.Errorf("failed to parse sync status YAML: %w", err)
	}

	return statuses, nil
}

// BuildStatusMap folds the ordered status records into a distro →
// in-sync-hold map. A duplicate distro name overwrites the earlier
// entry; last write wins.
func BuildStatusMap(statuses []SyncStatus) map[string]bool {
	m := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		m[s.Distro] = s.InSyncHold
	}
	return m
}
