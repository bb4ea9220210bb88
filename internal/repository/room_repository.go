package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clubops/fitclub/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides methods to create and retrieve rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room and sets its ID. A duplicate name or a
// non-positive capacity surfaces as an IntegrityError.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (name, capacity) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, room.Name, room.Capacity)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = id
	return nil
}

// GetByIDTx retrieves a room inside an existing transaction, returning
// ErrRoomNotFound when no row is found. Class creation uses this to
// pre-check capacity against the room within the same transaction.
func (r *RoomRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*model.Room, error) {
	const q = `SELECT room_id, name, capacity FROM rooms WHERE room_id = ?`
	var room model.Room
	err := tx.QueryRowContext(ctx, q, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}
