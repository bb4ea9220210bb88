package repository

import (
	"context"
	"database/sql"

	"github.com/clubops/fitclub/internal/model"
)

// GoalRepo provides methods over fitness goals.
type GoalRepo struct {
	db *sql.DB
}

// NewGoalRepo constructs a GoalRepo with the given DB handle.
func NewGoalRepo(db *sql.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

// Create inserts a new goal for a member and sets its ID.
func (r *GoalRepo) Create(ctx context.Context, g *model.FitnessGoal) error {
	const q = `INSERT INTO fitness_goals (member_id, goal_type, target_value, start_date, end_date)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, g.MemberID, g.GoalType, g.TargetValue, g.StartDate, g.EndDate)
	if err != nil {
		return wrapIntegrity(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

// ListByMember returns all goals for a member ordered by ID.
func (r *GoalRepo) ListByMember(ctx context.Context, memberID int64) ([]*model.FitnessGoal, error) {
	const q = `SELECT goal_id, member_id, goal_type, target_value, start_date, end_date
	           FROM fitness_goals WHERE member_id = ? ORDER BY goal_id`
	rows, err := r.db.QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FitnessGoal
	for rows.Next() {
		var g model.FitnessGoal
		if err := rows.Scan(&g.ID, &g.MemberID, &g.GoalType, &g.TargetValue, &g.StartDate, &g.EndDate); err != nil {
			return nil, err
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}
