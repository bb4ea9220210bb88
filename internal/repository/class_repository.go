package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clubops/fitclub/internal/model"
)

// ErrClassNotFound is returned when a class lookup fails.
var ErrClassNotFound = errors.New("class not found")

// ClassRepo provides methods to create and retrieve scheduled classes.
type ClassRepo struct {
	db *sql.DB
}

// NewClassRepo constructs a ClassRepo with the given DB handle.
func NewClassRepo(db *sql.DB) *ClassRepo {
	return &ClassRepo{db: db}
}

// CreateTx inserts a new class within the scope of an existing
// transaction and sets its ID. The caller pre-checks the room capacity in
// the same transaction; the capacity trigger enforces the rule again at
// the store, so a violation that slips past the pre-check still comes
// back as an IntegrityError with the check constraint kind. A second
// class in the same room at the same time surfaces as a duplicate.
func (r *ClassRepo) CreateTx(ctx context.Context, tx *sql.Tx, c *model.Class) error {
	const q = `INSERT INTO classes (trainer_id, room_id, class_name, class_time, capacity)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, c.TrainerID, c.RoomID, c.Name, c.Time, c.Capacity)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// GetByIDTx retrieves a class inside an existing transaction, returning
// ErrClassNotFound when no row is found.
func (r *ClassRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*model.Class, error) {
	const q = `SELECT class_id, trainer_id, room_id, class_name, class_time, capacity
	           FROM classes WHERE class_id = ?`
	var c model.Class
	err := tx.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.TrainerID, &c.RoomID, &c.Name, &c.Time, &c.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListWithAvailability returns every class ordered by time, each
// annotated with trainer name, room name and the live enrollment count.
func (r *ClassRepo) ListWithAvailability(ctx context.Context) ([]*model.ClassListing, error) {
	const q = `SELECT c.class_id, c.trainer_id, c.room_id, c.class_name, c.class_time, c.capacity,
	                  t.name, ro.name,
	                  (SELECT COUNT(*) FROM class_enrollments e WHERE e.class_id = c.class_id)
	           FROM classes c
	           JOIN trainers t ON t.trainer_id = c.trainer_id
	           JOIN rooms ro   ON ro.room_id   = c.room_id
	           ORDER BY c.class_time, c.class_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ClassListing
	for rows.Next() {
		var l model.ClassListing
		if err := rows.Scan(&l.ID, &l.TrainerID, &l.RoomID, &l.Name, &l.Time, &l.Capacity,
			&l.TrainerName, &l.RoomName, &l.Enrolled); err != nil {
			return nil, err
		}
		l.Remaining = l.Capacity - l.Enrolled
		out = append(out, &l)
	}
	return out, rows.Err()
}

// ListByTrainer returns the trainer's classes ordered by time, with room
// names joined in for display.
func (r *ClassRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]*model.ClassListing, error) {
	const q = `SELECT c.class_id, c.trainer_id, c.room_id, c.class_name, c.class_time, c.capacity,
	                  t.name, ro.name,
	                  (SELECT COUNT(*) FROM class_enrollments e WHERE e.class_id = c.class_id)
	           FROM classes c
	           JOIN trainers t ON t.trainer_id = c.trainer_id
	           JOIN rooms ro   ON ro.room_id   = c.room_id
	           WHERE c.trainer_id = ?
	           ORDER BY c.class_time, c.class_id`
	rows, err := r.db.QueryContext(ctx, q, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ClassListing
	for rows.Next() {
		var l model.ClassListing
		if err := rows.Scan(&l.ID, &l.TrainerID, &l.RoomID, &l.Name, &l.Time, &l.Capacity,
			&l.TrainerName, &l.RoomName, &l.Enrolled); err != nil {
			return nil, err
		}
		l.Remaining = l.Capacity - l.Enrolled
		out = append(out, &l)
	}
	return out, rows.Err()
}
