package booking

import (
	"testing"

	"campusbooking/internal/user"
)

func TestCanPerform_Create(t *testing.T) {
	if !CanPerform(user.RoleStudent, ActionCreate, nil, 0) {
		t.Fatal("student should be able to create")
	}
	if !CanPerform(user.RoleFaculty, ActionCreate, nil, 0) {
		t.Fatal("faculty should be able to create")
	}
	// Admins adjudicate, they do not book.
	if CanPerform(user.RoleAdmin, ActionCreate, nil, 0) {
		t.Fatal("admin should not be able to create")
	}
}

func TestCanPerform_ApproveReject(t *testing.T) {
	b := &Booking{ID: 1, RequesterID: 10, Status: StatusPending}

	for _, action := range []Action{ActionApprove, ActionReject} {
		if !CanPerform(user.RoleAdmin, action, b, 99) {
			t.Errorf("admin should be able to %s", action)
		}
		if CanPerform(user.RoleStudent, action, b, 10) {
			t.Errorf("student should not be able to %s, even on own booking", action)
		}
		if CanPerform(user.RoleFaculty, action, b, 10) {
			t.Errorf("faculty should not be able to %s, even on own booking", action)
		}
	}
}

func TestCanPerform_Cancel(t *testing.T) {
	b := &Booking{ID: 1, RequesterID: 10, Status: StatusPending}

	if !CanPerform(user.RoleStudent, ActionCancel, b, 10) {
		t.Fatal("owner should be able to cancel their booking")
	}
	if CanPerform(user.RoleStudent, ActionCancel, b, 11) {
		t.Fatal("non-owner student should not cancel someone else's booking")
	}
	if !CanPerform(user.RoleAdmin, ActionCancel, b, 99) {
		t.Fatal("admin should be able to cancel any booking")
	}
	if CanPerform(user.RoleFaculty, ActionCancel, nil, 10) {
		t.Fatal("cancel without a booking should be denied")
	}
}

func TestCanPerform_UnknownAction(t *testing.T) {
	if CanPerform(user.RoleAdmin, Action("delete"), &Booking{}, 1) {
		t.Fatal("unknown actions should be denied for everyone")
	}
}
