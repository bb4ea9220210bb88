// Package club implements the club's business operations as a flat set of
// named commands. Each operation takes validated arguments, runs as a
// single transaction against the store, and returns either a result or a
// structured error. The interactive shell in internal/cli is a thin
// adapter over this package; nothing here reads input or prints.
package club

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/clubops/fitclub/internal/repository"
)

// Input layouts for operator-entered dates and times.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// ErrAuthFailed is returned when admin authentication does not match a
// stored credential exactly.
var ErrAuthFailed = errors.New("invalid username or password")

// ValidationError reports malformed operator input: a missing required
// field, a bad email, or an unparsable date/time. It is distinct from
// IntegrityError, which the store raises after the write is attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErrf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// Service owns the repositories and dispatches business operations. The
// zero value is not usable; construct with New.
type Service struct {
	db          *sql.DB
	members     *repository.MemberRepo
	trainers    *repository.TrainerRepo
	admins      *repository.AdminRepo
	rooms       *repository.RoomRepo
	classes     *repository.ClassRepo
	sessions    *repository.SessionRepo
	enrollments *repository.EnrollmentRepo
	metrics     *repository.MetricRepo
	goals       *repository.GoalRepo
	validate    *validator.Validate
	now         func() time.Time
}

// New constructs a Service over the given database handle.
func New(db *sql.DB) *Service {
	return &Service{
		db:          db,
		members:     repository.NewMemberRepo(db),
		trainers:    repository.NewTrainerRepo(db),
		admins:      repository.NewAdminRepo(db),
		rooms:       repository.NewRoomRepo(db),
		classes:     repository.NewClassRepo(db),
		sessions:    repository.NewSessionRepo(db),
		enrollments: repository.NewEnrollmentRepo(db),
		metrics:     repository.NewMetricRepo(db),
		goals:       repository.NewGoalRepo(db),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         time.Now,
	}
}

// checkArgs runs struct validation over an operation's argument value and
// converts the first failure into a ValidationError.
func (s *Service) checkArgs(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return validationErrf("invalid %s: failed %q", f.Field(), f.Tag())
		}
		return &ValidationError{Reason: err.Error()}
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error so the store keeps its prior state.
func (s *Service) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
