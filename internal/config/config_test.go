package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsToSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")

	cfg := Load()
	require.Equal(t, DriverSQLite, cfg.DBDriver)
	require.Equal(t, "fitclub.db", cfg.DBPath)
}

func TestLoadNormalizesDriverName(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/club.db")

	cfg := Load()
	require.Equal(t, DriverSQLite, cfg.DBDriver)
	require.Equal(t, "/tmp/club.db", cfg.DBPath)
}

func TestLoadMySQL(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "club")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "fitness_club")

	cfg := Load()
	require.Equal(t, DriverMySQL, cfg.DBDriver)
	require.Equal(t, "club", cfg.DBUser)
	require.Empty(t, cfg.DBPass)
	require.Equal(t, "fitness_club", cfg.DBName)
}
