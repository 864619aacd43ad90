package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

// Insert records a workflow decision in the same transaction that applied
// it, so the audit row commits or rolls back atomically with the change it
// describes. A failed insert aborts the transaction; callers propagate the
// error rather than commit an unaudited change.
func Insert(ctx context.Context, tx pgx.Tx, bookingID *int64, action string, actorID int64, metadata any) error {
	var s *string
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		str := string(b)
		s = &str
	}
	const q = `
INSERT INTO audit_logs (booking_id, action, actor_id, metadata)
VALUES ($1, $2, $3, CAST($4 AS jsonb))
`
	_, err := tx.Exec(ctx, q, bookingID, action, actorID, s)
	return err
}
