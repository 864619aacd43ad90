package cupboard

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Cupboard is a storage unit hosted by a resource and subdivided into
// shelves.
type Cupboard struct {
	ID           int64     `json:"id"`
	ResourceID   int64     `json:"resourceId"`
	Name         string    `json:"name"`
	TotalShelves int       `json:"totalShelves"`
	CreatedAt    time.Time `json:"createdAt"`
}

const cupboardColumns = `id, resource_id, name, total_shelves, created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func collectCupboards(rows pgx.Rows) ([]Cupboard, error) {
	defer rows.Close()
	var out []Cupboard
	for rows.Next() {
		var c Cupboard
		if err := rows.Scan(&c.ID, &c.ResourceID, &c.Name, &c.TotalShelves, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) List(ctx context.Context, resourceID *int64) ([]Cupboard, error) {
	if resourceID != nil {
		const q = `
SELECT ` + cupboardColumns + `
FROM cupboards
WHERE resource_id = $1
ORDER BY name ASC
`
		rows, err := r.db.Query(ctx, q, *resourceID)
		if err != nil {
			return nil, err
		}
		return collectCupboards(rows)
	}
	const q = `
SELECT ` + cupboardColumns + `
FROM cupboards
ORDER BY resource_id ASC, name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectCupboards(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Cupboard, error) {
	const q = `
SELECT ` + cupboardColumns + `
FROM cupboards
WHERE id = $1
`
	c := &Cupboard{}
	if err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.ResourceID, &c.Name, &c.TotalShelves, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Insert(ctx context.Context, resourceID int64, name string, totalShelves int) (*Cupboard, error) {
	const q = `
INSERT INTO cupboards (resource_id, name, total_shelves)
VALUES ($1, $2, $3)
RETURNING ` + cupboardColumns + `
`
	c := &Cupboard{}
	if err := r.db.QueryRow(ctx, q, resourceID, name, totalShelves).Scan(&c.ID, &c.ResourceID, &c.Name, &c.TotalShelves, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Update(ctx context.Context, id, resourceID int64, name string, totalShelves int) (*Cupboard, error) {
	const q = `
UPDATE cupboards
SET resource_id = $2, name = $3, total_shelves = $4
WHERE id = $1
RETURNING ` + cupboardColumns + `
`
	c := &Cupboard{}
	if err := r.db.QueryRow(ctx, q, id, resourceID, name, totalShelves).Scan(&c.ID, &c.ResourceID, &c.Name, &c.TotalShelves, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM cupboards WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
