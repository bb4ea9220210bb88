package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clubops/fitclub/internal/model"
)

// ErrTrainerNotFound is returned when a trainer lookup fails.
var ErrTrainerNotFound = errors.New("trainer not found")

// TrainerRepo provides methods to create and retrieve trainers.
type TrainerRepo struct {
	db *sql.DB
}

// NewTrainerRepo constructs a TrainerRepo with the given DB handle.
func NewTrainerRepo(db *sql.DB) *TrainerRepo {
	return &TrainerRepo{db: db}
}

// Create inserts a new trainer and sets its ID. Duplicate emails surface
// as an IntegrityError.
func (r *TrainerRepo) Create(ctx context.Context, t *model.Trainer) error {
	const q = `INSERT INTO trainers (name, email, specialization) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.Email, t.Specialization)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

// GetByID retrieves a trainer by ID, returning ErrTrainerNotFound when
// no row is found.
func (r *TrainerRepo) GetByID(ctx context.Context, id int64) (*model.Trainer, error) {
	const q = `SELECT trainer_id, name, email, specialization FROM trainers WHERE trainer_id = ?`
	var t model.Trainer
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Email, &t.Specialization)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &t, nil
}
