package domain

import (
	"fmt"
	"strings"
)

// Status identifies one task lifecycle state.
type Status string

// Status values in lifecycle order.
const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// validStatuses stores all supported status values.
var validStatuses = []Status{StatusNew, StatusInProgress, StatusCompleted}

// statusLabels stores display labels keyed by status.
var statusLabels = map[Status]string{
	StatusNew:        "New",
	StatusInProgress: "In progress",
	StatusCompleted:  "Completed",
}

// ParseStatus parses input into a normalized status value.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(strings.ToUpper(raw)))
	for _, v := range validStatuses {
		if s == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown status: %q", raw)
}

// Label returns the human display label for the status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// TransitionAllowed reports whether a task may move from one status to another.
// The flow is forward-only: NEW -> IN_PROGRESS -> COMPLETED, COMPLETED is
// terminal, and a same-status no-op is always allowed.
func TransitionAllowed(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusNew:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	default:
		return false
	}
}

// StatusOptions returns the statuses an editor may offer for a task currently
// in the given status: the current status plus allowed forward transitions.
func StatusOptions(current Status) []Status {
	switch current {
	case StatusNew:
		return []Status{StatusNew, StatusInProgress}
	case StatusInProgress:
		return []Status{StatusInProgress, StatusCompleted}
	case StatusCompleted:
		return []Status{StatusCompleted}
	default:
		return []Status{current}
	}
}
