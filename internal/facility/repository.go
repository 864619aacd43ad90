package facility

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Facility is an amenity attached to a resource, e.g. a projector in a
// seminar room.
type Facility struct {
	ID         int64     `json:"id"`
	ResourceID int64     `json:"resourceId"`
	Name       string    `json:"name"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

const facilityColumns = `id, resource_id, name, COALESCE(details,''), created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func collectFacilities(rows pgx.Rows) ([]Facility, error) {
	defer rows.Close()
	var out []Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// List returns all facilities, or only a single resource's when resourceID
// is non-nil.
func (r *Repository) List(ctx context.Context, resourceID *int64) ([]Facility, error) {
	if resourceID != nil {
		const q = `
SELECT ` + facilityColumns + `
FROM facilities
WHERE resource_id = $1
ORDER BY name ASC
`
		rows, err := r.db.Query(ctx, q, *resourceID)
		if err != nil {
			return nil, err
		}
		return collectFacilities(rows)
	}
	const q = `
SELECT ` + facilityColumns + `
FROM facilities
ORDER BY resource_id ASC, name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectFacilities(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Facility, error) {
	const q = `
SELECT ` + facilityColumns + `
FROM facilities
WHERE id = $1
`
	f := &Facility{}
	if err := r.db.QueryRow(ctx, q, id).Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details, &f.CreatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Repository) Insert(ctx context.Context, resourceID int64, name, details string) (*Facility, error) {
	const q = `
INSERT INTO facilities (resource_id, name, details)
VALUES ($1, $2, NULLIF($3, ''))
RETURNING ` + facilityColumns + `
`
	f := &Facility{}
	if err := r.db.QueryRow(ctx, q, resourceID, name, details).Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details, &f.CreatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Repository) Update(ctx context.Context, id, resourceID int64, name, details string) (*Facility, error) {
	const q = `
UPDATE facilities
SET resource_id = $2, name = $3, details = NULLIF($4, '')
WHERE id = $1
RETURNING ` + facilityColumns + `
`
	f := &Facility{}
	if err := r.db.QueryRow(ctx, q, id, resourceID, name, details).Scan(&f.ID, &f.ResourceID, &f.Name, &f.Details, &f.CreatedAt); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM facilities WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
