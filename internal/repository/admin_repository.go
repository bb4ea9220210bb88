package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clubops/fitclub/internal/model"
)

// ErrAdminNotFound is returned when an admin lookup fails.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepo provides methods to create and retrieve admin accounts.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo constructs an AdminRepo with the given DB handle.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// Create inserts a new admin account and sets its ID.
func (r *AdminRepo) Create(ctx context.Context, a *model.Admin) error {
	const q = `INSERT INTO admins (username, password_hash, name, email) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Username, a.PasswordHash, a.Name, a.Email)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// GetByUsername fetches an admin by username, returning ErrAdminNotFound
// when no row is found.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `SELECT admin_id, username, password_hash, name, email
	           FROM admins WHERE username = ?`
	var a model.Admin
	err := r.db.QueryRowContext(ctx, q, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}
