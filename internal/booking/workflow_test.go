package booking

import (
	"errors"
	"testing"

	"campusbooking/internal/user"
)

func pendingBooking() *Booking {
	return &Booking{ID: 1, ResourceID: 7, RequesterID: 10, Status: StatusPending}
}

func TestPlanCreate(t *testing.T) {
	if err := PlanCreate(user.RoleStudent, at(9, 0), at(10, 0)); err != nil {
		t.Fatalf("student create rejected: %v", err)
	}
	if err := PlanCreate(user.RoleAdmin, at(9, 0), at(10, 0)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("admin create: expected ErrForbidden, got %v", err)
	}
	if err := PlanCreate(user.RoleFaculty, at(10, 0), at(9, 0)); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("inverted interval: expected ErrInvalidInterval, got %v", err)
	}
}

func TestApplyTransition_ApproveStampsApprover(t *testing.T) {
	b := pendingBooking()

	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if b.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", b.Status)
	}
	if b.ApproverID == nil || *b.ApproverID != 99 {
		t.Fatalf("expected approver 99, got %v", b.ApproverID)
	}
}

func TestApplyTransition_RejectStampsApprover(t *testing.T) {
	b := pendingBooking()

	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if b.ApproverID == nil || *b.ApproverID != 99 {
		t.Fatalf("expected approver 99, got %v", b.ApproverID)
	}
}

func TestApplyTransition_CancelKeepsApprover(t *testing.T) {
	b := pendingBooking()
	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := ApplyTransition(b, 10, user.RoleStudent, StatusCancelled); err != nil {
		t.Fatalf("owner cancel of approved booking: %v", err)
	}
	if b.Status != StatusCancelled {
		t.Fatalf("expected cancelled, got %s", b.Status)
	}
	if b.ApproverID == nil || *b.ApproverID != 99 {
		t.Fatalf("cancel must not touch approver, got %v", b.ApproverID)
	}
}

func TestApplyTransition_NonOwnerCancelForbidden(t *testing.T) {
	b := pendingBooking()

	err := ApplyTransition(b, 11, user.RoleStudent, StatusCancelled)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if b.Status != StatusPending {
		t.Fatalf("failed transition must not mutate the booking, got %s", b.Status)
	}
}

func TestApplyTransition_NonAdminApproveForbidden(t *testing.T) {
	b := pendingBooking()

	if err := ApplyTransition(b, 10, user.RoleStudent, StatusApproved); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if b.ApproverID != nil {
		t.Fatalf("failed transition must not stamp an approver")
	}
}

func TestApplyTransition_ApprovedCannotBeRejected(t *testing.T) {
	b := pendingBooking()
	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApplyTransition_TerminalSticky(t *testing.T) {
	for _, terminal := range []Status{StatusRejected, StatusCancelled} {
		for _, target := range allStatuses {
			b := pendingBooking()
			b.Status = terminal

			err := ApplyTransition(b, 99, user.RoleAdmin, target)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s → %s: expected ErrInvalidTransition, got %v", terminal, target, err)
			}
			if b.Status != terminal {
				t.Errorf("%s → %s: terminal booking mutated to %s", terminal, target, b.Status)
			}
		}
	}
}

func TestApplyTransition_ClosureRegardlessOfActor(t *testing.T) {
	actors := []struct {
		id   int64
		role user.Role
	}{
		{99, user.RoleAdmin},
		{10, user.RoleStudent}, // owner
		{11, user.RoleFaculty},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if CanTransition(from, to) {
				continue
			}
			for _, a := range actors {
				b := pendingBooking()
				b.Status = from

				if err := ApplyTransition(b, a.id, a.role, to); !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("%s → %s as %s: expected ErrInvalidTransition, got %v", from, to, a.role, err)
				}
			}
		}
	}
}

func TestApplyTransition_TargetPendingInvalid(t *testing.T) {
	b := pendingBooking()
	b.Status = StatusApproved

	if err := ApplyTransition(b, 99, user.RoleAdmin, StatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for target pending, got %v", err)
	}
}
