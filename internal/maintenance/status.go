package maintenance

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus accepts the four-state vocabulary. The legacy hyphenated
// spelling "in-progress" still appears in old client payloads and is
// normalized to in_progress.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ReplaceAll(s, "-", "_")
	switch Status(normalized) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(normalized), nil
	default:
		return "", fmt.Errorf("unknown maintenance status: %s", s)
	}
}
