package club

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/clubops/fitclub/internal/model"
	"github.com/clubops/fitclub/internal/repository"
)

// Default admin seeded on first run when no "admin" account exists.
const (
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// AuthenticateAdmin looks up an admin by username and compares the stored
// credential with plaintext equality, exactly as the system has always
// done. A missing account and a wrong password both return ErrAuthFailed.
func (s *Service) AuthenticateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, err
	}
	if a.PasswordHash != password {
		return nil, ErrAuthFailed
	}
	return a, nil
}

// EnsureDefaultAdmin creates the default admin account if no admin with
// the default username exists yet. It reports whether a new account was
// created.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	_, err := s.admins.GetByUsername(ctx, DefaultAdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return false, err
	}
	a := model.Admin{
		Username:     DefaultAdminUsername,
		PasswordHash: defaultAdminPassword,
		Name:         "System Administrator",
		Email:        "admin@fitnessclub.com",
	}
	if err := s.admins.Create(ctx, &a); err != nil {
		return false, err
	}
	return true, nil
}

// CreateTrainerArgs carries operator input for a new trainer.
type CreateTrainerArgs struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Specialization string // optional
}

// CreateTrainer adds a trainer; duplicate emails surface as a duplicate
// IntegrityError.
func (s *Service) CreateTrainer(ctx context.Context, args CreateTrainerArgs) (*model.Trainer, error) {
	if err := s.checkArgs(args); err != nil {
		return nil, err
	}
	t := model.Trainer{
		Name:           strings.TrimSpace(args.Name),
		Email:          strings.ToLower(strings.TrimSpace(args.Email)),
		Specialization: optional(args.Specialization),
	}
	if err := s.trainers.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateRoomArgs carries operator input for a new room.
type CreateRoomArgs struct {
	Name     string `validate:"required"`
	Capacity int    `validate:"required,gt=0"`
}

// CreateRoom adds a room. The gt=0 validation mirrors the store's check
// constraint so bad input is caught before the write.
func (s *Service) CreateRoom(ctx context.Context, args CreateRoomArgs) (*model.Room, error) {
	if err := s.checkArgs(args); err != nil {
		return nil, err
	}
	room := model.Room{Name: strings.TrimSpace(args.Name), Capacity: args.Capacity}
	if err := s.rooms.Create(ctx, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateClassArgs carries operator input for a new class. Time is in
// DateTimeLayout.
type CreateClassArgs struct {
	TrainerID int64  `validate:"required"`
	RoomID    int64  `validate:"required"`
	Name      string `validate:"required"`
	Time      string `validate:"required"`
	Capacity  int    `validate:"required,gt=0"`
}

// CreateClass schedules a class. The room is resolved inside the same
// transaction and repository.ErrCapacityExceedsRoom rejects a capacity
// above the room's before the insert; the store's trigger enforces the
// same rule again at write time, so the invariant holds on every path.
func (s *Service) CreateClass(ctx context.Context, args CreateClassArgs) (*model.Class, error) {
	if err := s.checkArgs(args); err != nil {
		return nil, err
	}
	at, err := time.Parse(DateTimeLayout, args.Time)
	if err != nil {
		return nil, validationErrf("invalid class time %q: want %s", args.Time, DateTimeLayout)
	}

	c := model.Class{
		TrainerID: args.TrainerID,
		RoomID:    args.RoomID,
		Name:      strings.TrimSpace(args.Name),
		Time:      at,
		Capacity:  args.Capacity,
	}
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		room, err := s.rooms.GetByIDTx(ctx, tx, args.RoomID)
		if err != nil {
			return err
		}
		if args.Capacity > room.Capacity {
			return repository.ErrCapacityExceedsRoom
		}
		return s.classes.CreateTx(ctx, tx, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
