package club

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/clubops/fitclub/internal/model"
)

// RegisterMemberArgs carries operator input for member registration.
// DateOfBirth, Gender and Phone are optional; empty strings mean "not
// provided".
type RegisterMemberArgs struct {
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	DateOfBirth string // DateLayout, optional
	Gender      string
	Phone       string
}

// RegisterMemberResult reports the created member. DateOfBirthDropped is
// set when the date was present but unparsable: registration tolerates a
// bad date by omitting the field rather than failing, so the caller can
// tell the operator what happened.
type RegisterMemberResult struct {
	Member             *model.Member
	DateOfBirthDropped bool
}

// RegisterMember creates a new member. A duplicate email comes back as a
// duplicate IntegrityError with no row committed.
func (s *Service) RegisterMember(ctx context.Context, args RegisterMemberArgs) (*RegisterMemberResult, error) {
	if err := s.checkArgs(args); err != nil {
		return nil, err
	}

	res := RegisterMemberResult{}
	m := model.Member{
		Name:   strings.TrimSpace(args.Name),
		Email:  strings.ToLower(strings.TrimSpace(args.Email)),
		Gender: optional(args.Gender),
		Phone:  optional(args.Phone),
	}
	if args.DateOfBirth != "" {
		if dob, err := time.Parse(DateLayout, args.DateOfBirth); err == nil {
			m.DateOfBirth = &dob
		} else {
			res.DateOfBirthDropped = true
		}
	}

	if err := s.members.Create(ctx, &m); err != nil {
		return nil, err
	}
	res.Member = &m
	return &res, nil
}

// UpdateMemberProfile changes a member's name and/or phone. Blank input
// keeps the current value; blanks for both fields are still a successful
// no-op. The member must exist.
func (s *Service) UpdateMemberProfile(ctx context.Context, memberID int64, name, phone string) (*model.Member, error) {
	var updated *model.Member
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		m, err := s.members.GetByIDTx(ctx, tx, memberID)
		if err != nil {
			return err
		}
		newName := optional(name)
		newPhone := optional(phone)
		if err := s.members.UpdateProfileTx(ctx, tx, memberID, newName, newPhone); err != nil {
			return err
		}
		if newName != nil {
			m.Name = *newName
		}
		if newPhone != nil {
			m.Phone = newPhone
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RecordHealthMetric stores a measurement for an existing member, stamped
// with the current time.
func (s *Service) RecordHealthMetric(ctx context.Context, memberID int64, metricType string, value float64) (*model.HealthMetric, error) {
	if strings.TrimSpace(metricType) == "" {
		return nil, validationErrf("metric type is required")
	}
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	m := model.HealthMetric{
		MemberID:   memberID,
		MetricType: strings.TrimSpace(metricType),
		Value:      value,
	}
	if err := s.metrics.Create(ctx, &m, s.now()); err != nil {
		return nil, err
	}
	return &m, nil
}

// SetFitnessGoalArgs carries operator input for a new fitness goal.
// TargetValue may be nil and the date strings may be empty.
type SetFitnessGoalArgs struct {
	MemberID    int64  `validate:"required"`
	GoalType    string `validate:"required"`
	TargetValue *float64
	StartDate   string // DateLayout, optional
	EndDate     string // DateLayout, optional
}

// SetFitnessGoal records a goal for an existing member. Unlike the
// lenient date-of-birth on registration, bad goal dates are rejected:
// the operator asked for a bounded goal and silently unbounding it would
// change its meaning.
func (s *Service) SetFitnessGoal(ctx context.Context, args SetFitnessGoalArgs) (*model.FitnessGoal, error) {
	if err := s.checkArgs(args); err != nil {
		return nil, err
	}
	if _, err := s.members.GetByID(ctx, args.MemberID); err != nil {
		return nil, err
	}

	g := model.FitnessGoal{
		MemberID:    args.MemberID,
		GoalType:    strings.TrimSpace(args.GoalType),
		TargetValue: args.TargetValue,
	}
	var err error
	if g.StartDate, err = optionalDate(args.StartDate); err != nil {
		return nil, validationErrf("invalid start date %q: want %s", args.StartDate, DateLayout)
	}
	if g.EndDate, err = optionalDate(args.EndDate); err != nil {
		return nil, validationErrf("invalid end date %q: want %s", args.EndDate, DateLayout)
	}

	if err := s.goals.Create(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// SearchMembers returns members whose name contains the fragment,
// case-insensitively.
func (s *Service) SearchMembers(ctx context.Context, fragment string) ([]*model.Member, error) {
	return s.members.SearchByName(ctx, fragment)
}

// MemberDetail is the trainer-facing view of one member: the most recent
// health metric (nil when none recorded) and every fitness goal.
type MemberDetail struct {
	Member       *model.Member
	LatestMetric *model.HealthMetric
	Goals        []*model.FitnessGoal
}

// GetMemberDetail resolves a member and loads their latest metric via the
// member_health_summary view together with all goals.
func (s *Service) GetMemberDetail(ctx context.Context, memberID int64) (*MemberDetail, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	latest, err := s.metrics.LatestByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &MemberDetail{Member: m, LatestMetric: latest, Goals: goals}, nil
}

// optional maps a trimmed-empty string to nil.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func optionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
