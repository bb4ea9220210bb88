package model

import "time"

// FitnessGoal is a target a member is working towards, e.g. a goal type
// of "Weight (kg)" with a target value. Goals are deleted together with
// their member.
type FitnessGoal struct {
	ID          int64      // fitness_goals.goal_id
	MemberID    int64      // fitness_goals.member_id
	GoalType    string     // fitness_goals.goal_type
	TargetValue *float64   // fitness_goals.target_value (nullable, 2 decimals)
	StartDate   *time.Time // fitness_goals.start_date (nullable)
	EndDate     *time.Time // fitness_goals.end_date (nullable)
}
