package booking

import "campusbooking/internal/user"

type Action string

const (
	ActionCreate  Action = "create"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// CanPerform is the single authorization gate for the booking workflow.
// It is a pure function of role, action and ownership.
//
// Rules:
//   - create: students and faculty book; admins only adjudicate.
//   - approve/reject: admin only.
//   - cancel: admin, or the requester on their own booking.
//
// b may be nil for create; every other action requires the booking.
func CanPerform(role user.Role, action Action, b *Booking, actorID int64) bool {
	switch action {
	case ActionCreate:
		return role == user.RoleStudent || role == user.RoleFaculty
	case ActionApprove, ActionReject:
		return role == user.RoleAdmin
	case ActionCancel:
		if b == nil {
			return false
		}
		if role == user.RoleAdmin {
			return true
		}
		return b.RequesterID == actorID
	default:
		return false
	}
}

// actionForTarget maps a requested target status to the gated action.
func actionForTarget(target Status) (Action, bool) {
	switch target {
	case StatusApproved:
		return ActionApprove, true
	case StatusRejected:
		return ActionReject, true
	case StatusCancelled:
		return ActionCancel, true
	default:
		return "", false
	}
}
