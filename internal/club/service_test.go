package club

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubops/fitclub/internal/config"
	"github.com/clubops/fitclub/internal/database"
	"github.com/clubops/fitclub/internal/model"
)

// newTestService builds a Service over a fresh in-memory database with a
// deterministic, strictly increasing clock.
func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Ensure(context.Background(), db, config.DriverSQLite))

	svc := New(db)
	tick := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return svc
}

func registerMember(t *testing.T, svc *Service, name, email string) *model.Member {
	t.Helper()
	res, err := svc.RegisterMember(context.Background(), RegisterMemberArgs{Name: name, Email: email})
	require.NoError(t, err)
	return res.Member
}

func createTrainer(t *testing.T, svc *Service, name, email string) *model.Trainer {
	t.Helper()
	tr, err := svc.CreateTrainer(context.Background(), CreateTrainerArgs{Name: name, Email: email})
	require.NoError(t, err)
	return tr
}

func createRoom(t *testing.T, svc *Service, name string, capacity int) *model.Room {
	t.Helper()
	room, err := svc.CreateRoom(context.Background(), CreateRoomArgs{Name: name, Capacity: capacity})
	require.NoError(t, err)
	return room
}

func createClass(t *testing.T, svc *Service, trainerID, roomID int64, name, at string, capacity int) *model.Class {
	t.Helper()
	c, err := svc.CreateClass(context.Background(), CreateClassArgs{
		TrainerID: trainerID,
		RoomID:    roomID,
		Name:      name,
		Time:      at,
		Capacity:  capacity,
	})
	require.NoError(t, err)
	return c
}

// uniqueEmail generates distinct addresses for bulk fixtures.
func uniqueEmail(i int) string { return fmt.Sprintf("member%d@club.test", i) }
