package club

import (
	"context"
	"database/sql"

	"github.com/clubops/fitclub/internal/model"
	"github.com/clubops/fitclub/internal/repository"
)

// ListAvailableClasses returns the full class catalog ordered by time,
// each entry annotated with live enrollment count and remaining spots.
func (s *Service) ListAvailableClasses(ctx context.Context) ([]*model.ClassListing, error) {
	return s.classes.ListWithAvailability(ctx)
}

// EnrollResult reports a successful enrollment together with the class
// and the spots remaining after it.
type EnrollResult struct {
	Enrollment *model.ClassEnrollment
	Class      *model.Class
	Remaining  int
}

// EnrollMemberInClass signs a member up for a class. The member and the
// class must exist; repository.ErrAlreadyEnrolled rejects a duplicate
// signup and repository.ErrClassFull rejects one past capacity. The
// existence, duplicate and capacity checks plus the insert run in one
// transaction, but check-then-act still races against a concurrent
// enrollment; the unique key catches duplicates, over-capacity is a
// documented gap.
func (s *Service) EnrollMemberInClass(ctx context.Context, memberID, classID int64) (*EnrollResult, error) {
	var res EnrollResult
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.members.GetByIDTx(ctx, tx, memberID); err != nil {
			return err
		}
		c, err := s.classes.GetByIDTx(ctx, tx, classID)
		if err != nil {
			return err
		}

		enrolled, err := s.enrollments.ExistsTx(ctx, tx, memberID, classID)
		if err != nil {
			return err
		}
		if enrolled {
			return repository.ErrAlreadyEnrolled
		}

		count, err := s.enrollments.CountByClassTx(ctx, tx, classID)
		if err != nil {
			return err
		}
		if count >= c.Capacity {
			return repository.ErrClassFull
		}

		e := model.ClassEnrollment{MemberID: memberID, ClassID: classID}
		if err := s.enrollments.CreateTx(ctx, tx, &e, s.now()); err != nil {
			return err
		}
		res = EnrollResult{Enrollment: &e, Class: c, Remaining: c.Capacity - count - 1}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
