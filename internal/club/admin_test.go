package club

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clubops/fitclub/internal/repository"
)

func TestEnsureDefaultAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	require.True(t, created)

	// Second call is a no-op.
	created, err = svc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)
	require.False(t, created)
}

func TestAuthenticateAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.EnsureDefaultAdmin(ctx)
	require.NoError(t, err)

	a, err := svc.AuthenticateAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "System Administrator", a.Name)

	_, err = svc.AuthenticateAdmin(ctx, "admin", "wrong")
	require.ErrorIs(t, err, ErrAuthFailed)

	_, err = svc.AuthenticateAdmin(ctx, "ghost", "admin123")
	require.ErrorIs(t, err, ErrAuthFailed)
}

func TestCreateTrainerDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	createTrainer(t, svc, "Coach", "coach@club.test")

	_, err := svc.CreateTrainer(ctx, CreateTrainerArgs{Name: "Other", Email: "coach@club.test"})
	require.True(t, repository.IsDuplicate(err))
}

func TestCreateRoomValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var verr *ValidationError
	_, err := svc.CreateRoom(ctx, CreateRoomArgs{Name: "Studio A", Capacity: 0})
	require.ErrorAs(t, err, &verr, "non-positive capacity is caught before the write")

	createRoom(t, svc, "Studio A", 10)
	_, err = svc.CreateRoom(ctx, CreateRoomArgs{Name: "Studio A", Capacity: 5})
	require.True(t, repository.IsDuplicate(err), "duplicate room name, got %v", err)
}
