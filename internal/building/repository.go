package building

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Building struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Floors    int       `json:"floors"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Building, error) {
	const q = `
SELECT id, name, COALESCE(code,''), floors, created_at
FROM buildings
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Building
	for rows.Next() {
		var b Building
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Floors, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Building, error) {
	const q = `
SELECT id, name, COALESCE(code,''), floors, created_at
FROM buildings
WHERE id = $1
`
	b := &Building{}
	if err := r.db.QueryRow(ctx, q, id).Scan(&b.ID, &b.Name, &b.Code, &b.Floors, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Repository) Insert(ctx context.Context, name, code string, floors int) (*Building, error) {
	const q = `
INSERT INTO buildings (name, code, floors)
VALUES ($1, NULLIF($2, ''), $3)
RETURNING id, name, COALESCE(code,''), floors, created_at
`
	b := &Building{}
	if err := r.db.QueryRow(ctx, q, name, code, floors).Scan(&b.ID, &b.Name, &b.Code, &b.Floors, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Repository) Update(ctx context.Context, id int64, name, code string, floors int) (*Building, error) {
	const q = `
UPDATE buildings
SET name = $2, code = NULLIF($3, ''), floors = $4
WHERE id = $1
RETURNING id, name, COALESCE(code,''), floors, created_at
`
	b := &Building{}
	if err := r.db.QueryRow(ctx, q, id, name, code, floors).Scan(&b.ID, &b.Name, &b.Code, &b.Floors, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM buildings WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
