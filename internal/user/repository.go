package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, name, email string, role Role, passwordHash string) (*User, error) {
	const q = `
INSERT INTO users (name, email, role, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, role, password_hash, created_at
`
	u := &User{}
	if err := r.db.QueryRow(ctx, q, name, email, string(role), passwordHash).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
SELECT id, name, email, role, password_hash, created_at
FROM users
WHERE email = $1
`
	u := &User{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	const q = `
SELECT id, name, email, role, password_hash, created_at
FROM users
WHERE id = $1
`
	u := &User{}
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	const q = `
SELECT id, name, email, role, password_hash, created_at
FROM users
ORDER BY name ASC, id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update rewrites a user's profile fields. The password hash is untouched;
// credential changes go through a separate flow.
func (r *Repository) Update(ctx context.Context, id int64, name, email string, role Role) (*User, error) {
	const q = `
UPDATE users
SET name = $2, email = $3, role = $4
WHERE id = $1
RETURNING id, name, email, role, password_hash, created_at
`
	u := &User{}
	if err := r.db.QueryRow(ctx, q, id, name, email, string(role)).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
