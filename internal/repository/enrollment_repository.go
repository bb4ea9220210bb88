package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/clubops/fitclub/internal/model"
)

// EnrollmentRepo provides methods over class enrollments. Enrollment is
// check-then-act (exists? full? insert) so all write-path methods run
// inside a caller-supplied transaction.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo constructs an EnrollmentRepo with the given DB handle.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo {
	return &EnrollmentRepo{db: db}
}

// ExistsTx reports whether the member is already enrolled in the class.
func (r *EnrollmentRepo) ExistsTx(ctx context.Context, tx *sql.Tx, memberID, classID int64) (bool, error) {
	const q = `SELECT COUNT(*) FROM class_enrollments WHERE member_id = ? AND class_id = ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, memberID, classID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountByClassTx returns the live enrollment count for a class.
func (r *EnrollmentRepo) CountByClassTx(ctx context.Context, tx *sql.Tx, classID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM class_enrollments WHERE class_id = ?`
	var n int
	if err := tx.QueryRowContext(ctx, q, classID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateTx inserts a new enrollment stamped with the given time and sets
// its ID. A duplicate (member, class) pair that slipped past ExistsTx
// still surfaces as a duplicate IntegrityError from the unique key.
func (r *EnrollmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, e *model.ClassEnrollment, at time.Time) error {
	const q = `INSERT INTO class_enrollments (member_id, class_id, enrollment_date)
	           VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, e.MemberID, e.ClassID, at)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	e.EnrolledAt = at
	return nil
}
