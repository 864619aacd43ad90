package resourcetype

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]ResourceType, error) {
	const q = `
SELECT id, name, COALESCE(description,''), created_at
FROM resource_types
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResourceType
	for rows.Next() {
		var rt ResourceType
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, name, description string) (*ResourceType, error) {
	const q = `
INSERT INTO resource_types (name, description)
VALUES ($1, NULLIF($2, ''))
RETURNING id, name, COALESCE(description,''), created_at
`
	rt := &ResourceType{}
	if err := r.db.QueryRow(ctx, q, name, description).Scan(&rt.ID, &rt.Name, &rt.Description, &rt.CreatedAt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *Repository) Update(ctx context.Context, id int64, name, description string) (*ResourceType, error) {
	const q = `
UPDATE resource_types
SET name = $2, description = NULLIF($3, '')
WHERE id = $1
RETURNING id, name, COALESCE(description,''), created_at
`
	rt := &ResourceType{}
	if err := r.db.QueryRow(ctx, q, id, name, description).Scan(&rt.ID, &rt.Name, &rt.Description, &rt.CreatedAt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM resource_types WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
