package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository persists user identities.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Upsert creates the user when first seen and returns the stored row.
// Role changes on re-login are applied (an allowlisted phone gains
// admin the next time it logs in).
func (r *Repository) Upsert(ctx context.Context, phone, name, role string) (User, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (phone, name, role, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(phone) DO UPDATE SET role = excluded.role`,
		phone, name, role, now,
	)
	if err != nil {
		return User{}, fmt.Errorf("failed to upsert user %s: %w", phone, err)
	}
	return r.Get(ctx, phone)
}

// Get retrieves a user by phone.
func (r *Repository) Get(ctx context.Context, phone string) (User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT phone, name, role, created_at FROM users WHERE phone = ?`, phone)

	var u User
	if err := row.Scan(&u.Phone, &u.Name, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return User{}, fmt.Errorf("user %s not found", phone)
		}
		return User{}, fmt.Errorf("failed to get user %s: %w", phone, err)
	}
	return u, nil
}
