package club

import (
	"context"
	"time"

	"github.com/clubops/fitclub/internal/model"
)

// BookPTSession books a personal-training session for a member with a
// trainer at the given time (DateTimeLayout). No existence check is run
// on either ID first: a missing member or trainer surfaces as a
// foreign-key IntegrityError from the insert, and a trainer already
// booked at that exact instant as a duplicate.
func (s *Service) BookPTSession(ctx context.Context, memberID, trainerID int64, at string) (*model.PTSession, error) {
	t, err := time.Parse(DateTimeLayout, at)
	if err != nil {
		return nil, validationErrf("invalid session time %q: want %s", at, DateTimeLayout)
	}

	sess := model.PTSession{
		MemberID:  memberID,
		TrainerID: trainerID,
		Time:      t,
		Status:    model.SessionStatusScheduled,
	}
	if err := s.sessions.Create(ctx, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// TrainerSchedule is everything a trainer has coming up: PT sessions and
// classes, each ordered by time.
type TrainerSchedule struct {
	Trainer  *model.Trainer
	Sessions []*model.PTSession
	Classes  []*model.ClassListing
}

// GetTrainerSchedule resolves a trainer and loads their sessions and
// classes.
func (s *Service) GetTrainerSchedule(ctx context.Context, trainerID int64) (*TrainerSchedule, error) {
	t, err := s.trainers.GetByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	classes, err := s.classes.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	return &TrainerSchedule{Trainer: t, Sessions: sessions, Classes: classes}, nil
}
