package shelf

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Shelf struct {
	ID          int64     `json:"id"`
	CupboardID  int64     `json:"cupboardId"`
	ShelfNumber int       `json:"shelfNumber"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const shelfColumns = `id, cupboard_id, shelf_number, capacity, COALESCE(description,''), created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func collectShelves(rows pgx.Rows) ([]Shelf, error) {
	defer rows.Close()
	var out []Shelf
	for rows.Next() {
		var s Shelf
		if err := rows.Scan(&s.ID, &s.CupboardID, &s.ShelfNumber, &s.Capacity, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) List(ctx context.Context, cupboardID *int64) ([]Shelf, error) {
	if cupboardID != nil {
		const q = `
SELECT ` + shelfColumns + `
FROM shelves
WHERE cupboard_id = $1
ORDER BY shelf_number ASC
`
		rows, err := r.db.Query(ctx, q, *cupboardID)
		if err != nil {
			return nil, err
		}
		return collectShelves(rows)
	}
	const q = `
SELECT ` + shelfColumns + `
FROM shelves
ORDER BY cupboard_id ASC, shelf_number ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectShelves(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Shelf, error) {
	const q = `
SELECT ` + shelfColumns + `
FROM shelves
WHERE id = $1
`
	s := &Shelf{}
	if err := r.db.QueryRow(ctx, q, id).Scan(&s.ID, &s.CupboardID, &s.ShelfNumber, &s.Capacity, &s.Description, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) Insert(ctx context.Context, cupboardID int64, shelfNumber, capacity int, description string) (*Shelf, error) {
	const q = `
INSERT INTO shelves (cupboard_id, shelf_number, capacity, description)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING ` + shelfColumns + `
`
	s := &Shelf{}
	if err := r.db.QueryRow(ctx, q, cupboardID, shelfNumber, capacity, description).Scan(&s.ID, &s.CupboardID, &s.ShelfNumber, &s.Capacity, &s.Description, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) Update(ctx context.Context, id, cupboardID int64, shelfNumber, capacity int, description string) (*Shelf, error) {
	const q = `
UPDATE shelves
SET cupboard_id = $2, shelf_number = $3, capacity = $4, description = NULLIF($5, '')
WHERE id = $1
RETURNING ` + shelfColumns + `
`
	s := &Shelf{}
	if err := r.db.QueryRow(ctx, q, id, cupboardID, shelfNumber, capacity, description).Scan(&s.ID, &s.CupboardID, &s.ShelfNumber, &s.Capacity, &s.Description, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM shelves WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
