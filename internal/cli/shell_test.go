package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/clubops/fitclub/internal/club"
	"github.com/clubops/fitclub/internal/config"
	"github.com/clubops/fitclub/internal/database"
)

func init() {
	// Plain output so assertions don't have to strip ANSI codes.
	color.NoColor = true
}

// runScript feeds the given lines to a fresh shell over an in-memory
// database and returns everything it printed.
func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Ensure(context.Background(), db, config.DriverSQLite))

	svc := club.New(db)
	_, err = svc.EnsureDefaultAdmin(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	sh := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	sh.Run(context.Background())
	return out.String()
}

func TestMenuExit(t *testing.T) {
	out := runScript(t, "0")
	require.Contains(t, out, "Health & Fitness Club Management")
	require.NotContains(t, out, "Invalid choice.")
}

func TestMenuRejectsUnknownChoice(t *testing.T) {
	out := runScript(t, "9", "0")
	require.Contains(t, out, "Invalid choice.")
}

func TestMenuSurvivesInputEnd(t *testing.T) {
	// No trailing "0": the loop must stop at EOF, not spin.
	out := runScript(t, "1")
	require.Contains(t, out, "Member Menu")
}

func TestRegisterMemberThroughMenu(t *testing.T) {
	out := runScript(t,
		"1",               // member functions
		"1",               // register
		"Alice",           // name
		"alice@club.test", // email
		"",                // dob
		"",                // gender
		"",                // phone
		"0",               // back
		"0",               // exit
	)
	require.Contains(t, out, "Member registered with ID: 1")
}

func TestRegisterMemberBadDateNoteThroughMenu(t *testing.T) {
	out := runScript(t,
		"1", "1",
		"Bob", "bob@club.test", "04/12/1990", "", "",
		"0", "0",
	)
	require.Contains(t, out, "Member registered with ID: 1")
	require.Contains(t, out, "Invalid date format. Member registered without date of birth.")
}

func TestDuplicateEmailErrorThroughMenu(t *testing.T) {
	out := runScript(t,
		"1",
		"1", "Alice", "dup@club.test", "", "", "",
		"1", "Imposter", "dup@club.test", "", "", "",
		"0", "0",
	)
	require.Contains(t, out, "Member registered with ID: 1")
	require.Contains(t, out, "rejected by the database (duplicate constraint)")
}

func TestAdminAuthenticationThroughMenu(t *testing.T) {
	out := runScript(t,
		"3", "admin", "wrong", // failed login drops back to the main menu
		"3", "admin", "admin123", // second try works
		"2", "Studio A", "10", // create a room
		"0", "0",
	)
	require.Contains(t, out, "Authentication failed. Invalid username or password.")
	require.Contains(t, out, "Authenticated as System Administrator")
	require.Contains(t, out, "Room created with ID: 1")
}

func TestClassCatalogThroughMenu(t *testing.T) {
	out := runScript(t,
		"3", "admin", "admin123",
		"1", "Coach", "coach@club.test", "", // trainer
		"2", "Studio A", "1", // room, capacity 1
		"3", "1", "1", "Yoga", "2026-09-06 09:00", "1", // class
		"0",
		"1",
		"1", "Alice", "alice@club.test", "", "", "", // member
		"7", "1", "1", // sign up: member 1, class 1
		"6", // view classes again: now FULL
		"0", "0",
	)
	require.Contains(t, out, "Successfully enrolled in 'Yoga'!")
	require.Contains(t, out, "Spaces remaining: 0")
	require.Contains(t, out, "FULL")
}
