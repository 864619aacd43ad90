package booking

import (
	"errors"
	"fmt"
	"time"

	"campusbooking/internal/user"
)

var (
	ErrInvalidInterval   = errors.New("booking interval start must be before end")
	ErrNotFound          = errors.New("booking not found")
	ErrForbidden         = errors.New("actor may not perform this action")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ConflictError reports the overlapping active booking so the caller can
// pick another slot.
type ConflictError struct {
	Existing *Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource %d already booked from %s to %s",
		e.Existing.ResourceID,
		e.Existing.Start.Format(time.RFC3339),
		e.Existing.End.Format(time.RFC3339))
}

// ValidateInterval rejects empty and inverted intervals before any conflict
// check runs.
func ValidateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return ErrInvalidInterval
	}
	return nil
}

// PlanCreate validates a create request up front: the gate first, then the
// interval. It performs no I/O; the conflict check happens inside the create
// transaction.
func PlanCreate(role user.Role, start, end time.Time) error {
	if !CanPerform(role, ActionCreate, nil, 0) {
		return ErrForbidden
	}
	return ValidateInterval(start, end)
}

// ApplyTransition validates and applies a status change in place. A (from,
// target) pair outside the transition table fails with ErrInvalidTransition
// no matter who asks, which keeps terminal statuses sticky; only then is the
// actor checked against the gate. On approve and reject the acting admin is
// stamped as the approver; other transitions leave ApproverID untouched.
func ApplyTransition(b *Booking, actorID int64, role user.Role, target Status) error {
	action, ok := actionForTarget(target)
	if !ok || !CanTransition(b.Status, target) {
		return ErrInvalidTransition
	}
	if !CanPerform(role, action, b, actorID) {
		return ErrForbidden
	}

	b.Status = target
	if target == StatusApproved || target == StatusRejected {
		id := actorID
		b.ApproverID = &id
	}
	return nil
}
