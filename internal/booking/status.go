package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// ActiveStatuses are the statuses that hold a reservation on a resource.
// Rejected and cancelled bookings never block a time slot.
var ActiveStatuses = []Status{StatusPending, StatusApproved}

var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusApproved: true, StatusRejected: true, StatusCancelled: true},
	StatusApproved:  {StatusCancelled: true}, // an approved booking cannot be retroactively rejected
	StatusRejected:  {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// IsTerminal reports whether no transition leads out of the status.
func IsTerminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}
