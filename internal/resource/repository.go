package resource

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Resource struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TypeID      int64     `json:"typeId"`
	BuildingID  int64     `json:"buildingId"`
	FloorNumber int       `json:"floorNumber"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const resourceColumns = `id, name, type_id, building_id, floor_number, COALESCE(description,''), created_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func collectResources(rows pgx.Rows) ([]Resource, error) {
	defer rows.Close()
	var out []Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.Name, &res.TypeID, &res.BuildingID, &res.FloorNumber, &res.Description, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// List returns all resources, or only those in a building when buildingID
// is non-nil.
func (r *Repository) List(ctx context.Context, buildingID *int64) ([]Resource, error) {
	if buildingID != nil {
		const q = `
SELECT ` + resourceColumns + `
FROM resources
WHERE building_id = $1
ORDER BY floor_number ASC, name ASC
`
		rows, err := r.db.Query(ctx, q, *buildingID)
		if err != nil {
			return nil, err
		}
		return collectResources(rows)
	}
	const q = `
SELECT ` + resourceColumns + `
FROM resources
ORDER BY building_id ASC, floor_number ASC, name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}

// ListByLocation returns a building's resources, optionally narrowed to a
// single floor, ordered by name for the room picker.
func (r *Repository) ListByLocation(ctx context.Context, buildingID int64, floor *int) ([]Resource, error) {
	if floor != nil {
		const q = `
SELECT ` + resourceColumns + `
FROM resources
WHERE building_id = $1 AND floor_number = $2
ORDER BY name ASC
`
		rows, err := r.db.Query(ctx, q, buildingID, *floor)
		if err != nil {
			return nil, err
		}
		return collectResources(rows)
	}
	const q = `
SELECT ` + resourceColumns + `
FROM resources
WHERE building_id = $1
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	return collectResources(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Resource, error) {
	const q = `
SELECT ` + resourceColumns + `
FROM resources
WHERE id = $1
`
	res := &Resource{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&res.ID, &res.Name, &res.TypeID, &res.BuildingID, &res.FloorNumber, &res.Description, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Repository) Insert(ctx context.Context, name string, typeID, buildingID int64, floor int, description string) (*Resource, error) {
	const q = `
INSERT INTO resources (name, type_id, building_id, floor_number, description)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING ` + resourceColumns + `
`
	res := &Resource{}
	if err := r.db.QueryRow(ctx, q, name, typeID, buildingID, floor, description).Scan(
		&res.ID, &res.Name, &res.TypeID, &res.BuildingID, &res.FloorNumber, &res.Description, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Repository) Update(ctx context.Context, id int64, name string, typeID, buildingID int64, floor int, description string) (*Resource, error) {
	const q = `
UPDATE resources
SET name = $2, type_id = $3, building_id = $4, floor_number = $5, description = NULLIF($6, '')
WHERE id = $1
RETURNING ` + resourceColumns + `
`
	res := &Resource{}
	if err := r.db.QueryRow(ctx, q, id, name, typeID, buildingID, floor, description).Scan(
		&res.ID, &res.Name, &res.TypeID, &res.BuildingID, &res.FloorNumber, &res.Description, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM resources WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
