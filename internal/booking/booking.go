package booking

import "time"

// Booking is a reservation of a resource for a half-open interval
// [Start, End). ApproverID is set exactly when an admin decided the request.
type Booking struct {
	ID          int64     `json:"id"`
	ResourceID  int64     `json:"resourceId"`
	RequesterID int64     `json:"requesterId"`
	ApproverID  *int64    `json:"approverId,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
