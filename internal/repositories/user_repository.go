package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
)

type UserRepository struct {
	DB intdb.DBTX
}

func (r UserRepository) Create(ctx context.Context, name, email string, role domain.Role) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (name, email, role) VALUES (?, ?, ?)`, name, email, string(role))
	if err != nil {
		return 0, fmt.Errorf("insert user %s: %w", email, err)
	}
	return res.LastInsertId()
}

// FindByEmail returns sql.ErrNoRows (wrapped) when nobody signed up with email.
func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.GetContext(ctx, &u,
		`SELECT id, name, email, COALESCE(role, 'user') AS role FROM users WHERE email = ? LIMIT 1`, email)
	if err != nil {
		return models.User{}, fmt.Errorf("find user %s: %w", email, err)
	}
	return u, nil
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	if err := r.DB.SelectContext(ctx, &out,
		`SELECT id, name, email, COALESCE(role, 'user') AS role FROM users`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (r UserRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET role = ? WHERE id = ?`, string(role), id)
	if err != nil {
		return 0, fmt.Errorf("update user %d role: %w", id, err)
	}
	return res.RowsAffected()
}
