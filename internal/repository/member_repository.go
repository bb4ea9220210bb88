package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/clubops/fitclub/internal/model"
)

// ErrMemberNotFound is returned when a member lookup fails.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepo provides methods to create, retrieve and update members.
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo constructs a MemberRepo with the given DB handle.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// Create inserts a new member. After insert the ID field of the member is
// set. A duplicate email surfaces as an IntegrityError with the
// duplicate constraint kind.
func (r *MemberRepo) Create(ctx context.Context, m *model.Member) error {
	const q = `INSERT INTO members (name, email, date_of_birth, gender, phone)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.DateOfBirth, m.Gender, m.Phone)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// GetByID retrieves a member by ID. It returns ErrMemberNotFound when no
// row is found.
func (r *MemberRepo) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	const q = `SELECT member_id, name, email, date_of_birth, gender, phone
	           FROM members WHERE member_id = ?`
	return scanMember(r.db.QueryRowContext(ctx, q, id))
}

// GetByIDTx is GetByID inside an existing transaction.
func (r *MemberRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id int64) (*model.Member, error) {
	const q = `SELECT member_id, name, email, date_of_birth, gender, phone
	           FROM members WHERE member_id = ?`
	return scanMember(tx.QueryRowContext(ctx, q, id))
}

func scanMember(row *sql.Row) (*model.Member, error) {
	var m model.Member
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.DateOfBirth, &m.Gender, &m.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateProfileTx updates a member's name and/or phone inside the given
// transaction. A nil field means "keep the current value". The caller is
// expected to have resolved the member first; sql.ErrNoRows is returned
// if the row vanished meanwhile.
func (r *MemberRepo) UpdateProfileTx(ctx context.Context, tx *sql.Tx, id int64, name, phone *string) error {
	const q = `UPDATE members
	           SET name  = COALESCE(?, name),
	               phone = COALESCE(?, phone)
	           WHERE member_id = ?`
	_, err := tx.ExecContext(ctx, q, name, phone, id)
	return wrapIntegrity(err)
}

// SearchByName returns members whose name contains the given fragment,
// case-insensitively, ordered by ID.
func (r *MemberRepo) SearchByName(ctx context.Context, fragment string) ([]*model.Member, error) {
	const q = `SELECT member_id, name, email, date_of_birth, gender, phone
	           FROM members
	           WHERE LOWER(name) LIKE ?
	           ORDER BY member_id`
	pattern := "%" + strings.ToLower(fragment) + "%"
	rows, err := r.db.QueryContext(ctx, q, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.DateOfBirth, &m.Gender, &m.Phone); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
