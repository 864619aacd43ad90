package maintenance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Record struct {
	ID              int64           `json:"id"`
	ResourceID      int64           `json:"resourceId"`
	MaintenanceType string          `json:"maintenanceType"`
	ScheduledDate   *time.Time      `json:"scheduledDate,omitempty"`
	Status          Status          `json:"status"`
	Cost            decimal.Decimal `json:"cost"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

const recordColumns = `id, resource_id, maintenance_type, scheduled_date, status, cost::text, COALESCE(notes,''), created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var cost string
	if err := row.Scan(
		&rec.ID, &rec.ResourceID, &rec.MaintenanceType, &rec.ScheduledDate, &rec.Status, &cost, &rec.Notes, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	rec.Cost, err = decimal.NewFromString(cost)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all maintenance records, or only a single resource's when
// resourceID is non-nil.
func (r *Repository) List(ctx context.Context, resourceID *int64) ([]Record, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if resourceID != nil {
		const q = `
SELECT ` + recordColumns + `
FROM maintenance
WHERE resource_id = $1
ORDER BY scheduled_date ASC NULLS LAST, id ASC
`
		rows, err = r.db.Query(ctx, q, *resourceID)
	} else {
		const q = `
SELECT ` + recordColumns + `
FROM maintenance
ORDER BY scheduled_date ASC NULLS LAST, id ASC
`
		rows, err = r.db.Query(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var cost string
		if err := rows.Scan(
			&rec.ID, &rec.ResourceID, &rec.MaintenanceType, &rec.ScheduledDate, &rec.Status, &cost, &rec.Notes, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if rec.Cost, err = decimal.NewFromString(cost); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, resourceID int64, maintenanceType string, scheduled *time.Time, status Status, cost decimal.Decimal, notes string) (*Record, error) {
	const q = `
INSERT INTO maintenance (resource_id, maintenance_type, scheduled_date, status, cost, notes)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
RETURNING ` + recordColumns + `
`
	return scanRecord(r.db.QueryRow(ctx, q, resourceID, maintenanceType, scheduled, string(status), cost.String(), notes))
}

func (r *Repository) Update(ctx context.Context, id int64, maintenanceType string, scheduled *time.Time, status Status, cost decimal.Decimal, notes string) (*Record, error) {
	const q = `
UPDATE maintenance
SET maintenance_type = $2, scheduled_date = $3, status = $4, cost = $5, notes = NULLIF($6, '')
WHERE id = $1
RETURNING ` + recordColumns + `
`
	return scanRecord(r.db.QueryRow(ctx, q, id, maintenanceType, scheduled, string(status), cost.String(), notes))
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM maintenance WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
