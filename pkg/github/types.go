package github

// Issue represents an open issue in the target repository. Only the
// fields the reconciler needs are carried; Labels preserves the order
// returned by the API and is not deduplicated.
type Issue struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
}

// ChangeType represents the kind of label change planned for an issue
type ChangeType string

const (
	ChangeTypeAdd    ChangeType = "add"
	ChangeTypeRemove ChangeType = "remove"
)

// LabelChange represents a planned label update for a single issue.
// After is the full label set that will be submitted; label updates
// are whole-set replacements, not incremental edits.
type LabelChange struct {
	Type   ChangeType `json:"type"`
	Issue  Issue      `json:"issue"`
	Distro string     `json:"distro"`
	Before []string   `json:"before"`
	After  []string   `json:"after"`
}
