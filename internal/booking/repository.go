package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, resource_id, requester_id, approver_id, start_datetime, end_datetime, status, created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.ResourceID, &b.RequesterID, &b.ApproverID, &b.Start, &b.End, &b.Status, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ResourceID, &b.RequesterID, &b.ApproverID, &b.Start, &b.End, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListAll returns every booking, optionally filtered by status. Admin view.
func (r *Repository) ListAll(ctx context.Context, status *Status) ([]Booking, error) {
	if status != nil {
		const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE status = $1
ORDER BY start_datetime ASC, id ASC
`
		rows, err := r.db.Query(ctx, q, string(*status))
		if err != nil {
			return nil, err
		}
		return collectBookings(rows)
	}
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
ORDER BY start_datetime ASC, id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// ListByRequester returns a requester's own bookings. Timetable view.
func (r *Repository) ListByRequester(ctx context.Context, requesterID int64) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE requester_id = $1
ORDER BY start_datetime ASC, id ASC
`
	rows, err := r.db.Query(ctx, q, requesterID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
`
	b, err := scanBooking(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

// LockResource takes a row lock on the resource for the duration of the
// surrounding transaction. This serializes conflict checks per resource so
// two concurrent creates cannot both pass the read before either writes.
func LockResource(ctx context.Context, tx pgx.Tx, resourceID int64) error {
	const q = `SELECT id FROM resources WHERE id = $1 FOR UPDATE`
	var id int64
	if err := tx.QueryRow(ctx, q, resourceID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListActiveForResource fetches the pending and approved bookings of a
// resource inside the create/re-validate transaction.
func ListActiveForResource(ctx context.Context, tx pgx.Tx, resourceID int64) ([]Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE resource_id = $1 AND status = ANY($2)
ORDER BY start_datetime ASC
`
	statuses := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		statuses[i] = string(s)
	}
	rows, err := tx.Query(ctx, q, resourceID, statuses)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

// Insert persists a new pending booking. The bookings table carries an
// exclusion constraint over (resource_id, interval) for active statuses, so
// a writer that somehow slips past the in-transaction check still cannot
// commit an overlap; the violation is reported as a ConflictError.
func Insert(ctx context.Context, tx pgx.Tx, resourceID, requesterID int64, start, end time.Time) (*Booking, error) {
	const q = `
INSERT INTO bookings (resource_id, requester_id, start_datetime, end_datetime, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + bookingColumns + `
`
	b, err := scanBooking(tx.QueryRow(ctx, q, resourceID, requesterID, start, end, string(StatusPending)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return nil, &ConflictError{Existing: &Booking{ResourceID: resourceID, Start: start, End: end}}
		}
		return nil, err
	}
	return b, nil
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1
FOR UPDATE
`
	b, err := scanBooking(tx.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status Status, approverID *int64) (*Booking, error) {
	const q = `
UPDATE bookings
SET status = $2, approver_id = COALESCE($3, approver_id)
WHERE id = $1
RETURNING ` + bookingColumns + `
`
	return scanBooking(tx.QueryRow(ctx, q, id, string(status), approverID))
}
