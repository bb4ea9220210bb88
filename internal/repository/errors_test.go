package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapIntegrityClassifiesBothDialects(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want string
	}{
		{"mysql duplicate", "Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_members_email'", ConstraintDuplicate},
		{"sqlite duplicate", "constraint failed: UNIQUE constraint failed: members.email (2067)", ConstraintDuplicate},
		{"mysql fk insert", "Error 1452 (23000): Cannot add or update a child row", ConstraintForeignKey},
		{"mysql fk delete", "Error 1451 (23000): Cannot delete or update a parent row", ConstraintForeignKey},
		{"sqlite fk", "constraint failed: FOREIGN KEY constraint failed (787)", ConstraintForeignKey},
		{"mysql check", "Error 3819 (HY000): Check constraint 'chk_room_capacity' is violated", ConstraintCheck},
		{"mysql trigger signal", "Error 1644 (45000): class capacity exceeds room capacity", ConstraintCheck},
		{"sqlite check", "constraint failed: CHECK constraint failed: rooms (275)", ConstraintCheck},
		{"sqlite trigger abort", "SQL logic error: class capacity exceeds room capacity (1)", ConstraintCheck},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapIntegrity(errors.New(tc.msg))
			var ierr *IntegrityError
			require.ErrorAs(t, err, &ierr)
			require.Equal(t, tc.want, ierr.Constraint)
		})
	}
}

func TestWrapIntegrityPassesThroughOtherErrors(t *testing.T) {
	require.Nil(t, wrapIntegrity(nil))

	plain := errors.New("driver: bad connection")
	require.Same(t, plain, wrapIntegrity(plain))

	var ierr *IntegrityError
	require.False(t, errors.As(wrapIntegrity(plain), &ierr))
}

func TestIsDuplicate(t *testing.T) {
	dup := wrapIntegrity(errors.New("UNIQUE constraint failed: members.email"))
	require.True(t, IsDuplicate(dup))
	require.False(t, IsDuplicate(errors.New("something else")))
	require.False(t, IsDuplicate(nil))
}
