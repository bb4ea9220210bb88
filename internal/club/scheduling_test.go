package club

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubops/fitclub/internal/repository"
)

func TestBookPTSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := registerMember(t, svc, "Alice", "alice@club.test")
	tr := createTrainer(t, svc, "Coach", "coach@club.test")

	sess, err := svc.BookPTSession(ctx, m.ID, tr.ID, "2026-09-05 10:00")
	require.NoError(t, err)
	require.NotZero(t, sess.ID)
	require.Equal(t, "scheduled", sess.Status)
}

func TestBookPTSessionRejectsBadTime(t *testing.T) {
	svc := newTestService(t)
	var verr *ValidationError
	_, err := svc.BookPTSession(context.Background(), 1, 1, "tomorrow at noon")
	require.ErrorAs(t, err, &verr)
}

func TestBookPTSessionTrainerDoubleBooking(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m1 := registerMember(t, svc, "Alice", "alice@club.test")
	m2 := registerMember(t, svc, "Bob", "bob@club.test")
	tr := createTrainer(t, svc, "Coach", "coach@club.test")

	first, err := svc.BookPTSession(ctx, m1.ID, tr.ID, "2026-09-05 10:00")
	require.NoError(t, err)

	_, err = svc.BookPTSession(ctx, m2.ID, tr.ID, "2026-09-05 10:00")
	require.True(t, repository.IsDuplicate(err),
		"same trainer at the same instant must be rejected, got %v", err)

	// The first booking stays scheduled.
	sched, err := svc.GetTrainerSchedule(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, sched.Sessions, 1)
	require.Equal(t, first.ID, sched.Sessions[0].ID)
}

func TestBookPTSessionUnknownReferences(t *testing.T) {
	svc := newTestService(t)

	// No pre-check on member/trainer: a missing reference surfaces as a
	// foreign-key integrity error from the insert.
	_, err := svc.BookPTSession(context.Background(), 9999, 9999, "2026-09-05 10:00")
	var ierr *repository.IntegrityError
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, repository.ConstraintForeignKey, ierr.Constraint)
}

func TestCreateClassCapacityChecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)

	// Within the room's capacity: fine.
	createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 10)

	// Above it: rejected by the pre-check, no row created.
	_, err := svc.CreateClass(ctx, CreateClassArgs{
		TrainerID: tr.ID, RoomID: room.ID, Name: "Spin", Time: "2026-09-06 10:00", Capacity: 11,
	})
	require.ErrorIs(t, err, repository.ErrCapacityExceedsRoom)

	listings, err := svc.ListAvailableClasses(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	_, err = svc.CreateClass(ctx, CreateClassArgs{
		TrainerID: tr.ID, RoomID: 9999, Name: "Spin", Time: "2026-09-06 10:00", Capacity: 5,
	})
	require.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestCreateClassRoomTimeConflict(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)
	createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 10)

	_, err := svc.CreateClass(ctx, CreateClassArgs{
		TrainerID: tr.ID, RoomID: room.ID, Name: "Pilates", Time: "2026-09-06 09:00", Capacity: 5,
	})
	require.True(t, repository.IsDuplicate(err),
		"same room and time must be rejected, got %v", err)
}

func TestEnrollmentLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)
	c := createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 2)
	m := registerMember(t, svc, "Alice", "alice@club.test")

	res, err := svc.EnrollMemberInClass(ctx, m.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, res.Remaining)

	// Enrolling twice is rejected and the count is unchanged.
	_, err = svc.EnrollMemberInClass(ctx, m.ID, c.ID)
	require.ErrorIs(t, err, repository.ErrAlreadyEnrolled)

	listings, err := svc.ListAvailableClasses(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, listings[0].Enrolled)

	_, err = svc.EnrollMemberInClass(ctx, 9999, c.ID)
	require.ErrorIs(t, err, repository.ErrMemberNotFound)
	_, err = svc.EnrollMemberInClass(ctx, m.ID, 9999)
	require.ErrorIs(t, err, repository.ErrClassNotFound)
}

// The Studio A scenario: a capacity-10 room, a capacity-10 class, ten
// successful enrollments, an eleventh rejected as full.
func TestEnrollmentCapacityScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)
	c := createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 10)

	// An over-sized sibling class is refused outright.
	_, err := svc.CreateClass(ctx, CreateClassArgs{
		TrainerID: tr.ID, RoomID: room.ID, Name: "Big Yoga", Time: "2026-09-06 10:00", Capacity: 11,
	})
	require.ErrorIs(t, err, repository.ErrCapacityExceedsRoom)

	for i := 0; i < 10; i++ {
		m := registerMember(t, svc, fmt.Sprintf("Member %d", i), uniqueEmail(i))
		res, err := svc.EnrollMemberInClass(ctx, m.ID, c.ID)
		require.NoError(t, err)
		require.Equal(t, 9-i, res.Remaining)
	}

	late := registerMember(t, svc, "Latecomer", "late@club.test")
	_, err = svc.EnrollMemberInClass(ctx, late.ID, c.ID)
	require.ErrorIs(t, err, repository.ErrClassFull)

	listings, err := svc.ListAvailableClasses(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, listings[0].Enrolled)
	require.True(t, listings[0].Full())
}

func TestListAvailableClassesOrdering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	roomA := createRoom(t, svc, "Studio A", 10)
	roomB := createRoom(t, svc, "Studio B", 10)

	createClass(t, svc, tr.ID, roomA.ID, "Evening Yoga", "2026-09-06 18:00", 10)
	createClass(t, svc, tr.ID, roomB.ID, "Morning Spin", "2026-09-06 07:00", 10)

	listings, err := svc.ListAvailableClasses(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	require.Equal(t, "Morning Spin", listings[0].Name, "catalog is ordered by time")
	require.Equal(t, "Coach", listings[0].TrainerName)
	require.Equal(t, "Studio B", listings[0].RoomName)
}

func TestGetTrainerSchedule(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	m := registerMember(t, svc, "Alice", "alice@club.test")
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)

	createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 10)
	_, err := svc.BookPTSession(ctx, m.ID, tr.ID, "2026-09-05 10:00")
	require.NoError(t, err)
	_, err = svc.BookPTSession(ctx, m.ID, tr.ID, "2026-09-04 10:00")
	require.NoError(t, err)

	sched, err := svc.GetTrainerSchedule(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, sched.Sessions, 2)
	require.True(t, sched.Sessions[0].Time.Before(sched.Sessions[1].Time), "sessions ordered by time")
	require.Equal(t, "Alice", sched.Sessions[0].MemberName)
	require.Len(t, sched.Classes, 1)

	_, err = svc.GetTrainerSchedule(ctx, 9999)
	require.ErrorIs(t, err, repository.ErrTrainerNotFound)
}

func TestEnrollmentRollbackLeavesNoState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	tr := createTrainer(t, svc, "Coach", "coach@club.test")
	room := createRoom(t, svc, "Studio A", 10)
	c := createClass(t, svc, tr.ID, room.ID, "Yoga", "2026-09-06 09:00", 1)
	m1 := registerMember(t, svc, "Alice", "alice@club.test")
	m2 := registerMember(t, svc, "Bob", "bob@club.test")

	_, err := svc.EnrollMemberInClass(ctx, m1.ID, c.ID)
	require.NoError(t, err)
	_, err = svc.EnrollMemberInClass(ctx, m2.ID, c.ID)
	require.True(t, errors.Is(err, repository.ErrClassFull))

	listings, err := svc.ListAvailableClasses(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, listings[0].Enrolled, "failed enrollment must not change the count")
}
