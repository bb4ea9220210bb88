package repository

import (
	"context"
	"database/sql"

	"github.com/clubops/fitclub/internal/model"
)

// SessionRepo provides methods to book and list PT sessions.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create books a new PT session and sets its ID. No existence check is
// performed on the member or trainer beforehand; a missing reference
// surfaces as a foreign-key IntegrityError, and a trainer already booked
// at the same instant surfaces as a duplicate.
func (r *SessionRepo) Create(ctx context.Context, s *model.PTSession) error {
	const q = `INSERT INTO pt_sessions (member_id, trainer_id, session_time, status)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.MemberID, s.TrainerID, s.Time, s.Status)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// ListByTrainer returns the trainer's PT sessions ordered by time, with
// the member name joined in for schedule display.
func (r *SessionRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]*model.PTSession, error) {
	const q = `SELECT s.session_id, s.member_id, s.trainer_id, s.session_time, s.status, m.name
	           FROM pt_sessions s
	           JOIN members m ON m.member_id = s.member_id
	           WHERE s.trainer_id = ?
	           ORDER BY s.session_time, s.session_id`
	rows, err := r.db.QueryContext(ctx, q, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.PTSession
	for rows.Next() {
		var s model.PTSession
		if err := rows.Scan(&s.ID, &s.MemberID, &s.TrainerID, &s.Time, &s.Status, &s.MemberName); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
