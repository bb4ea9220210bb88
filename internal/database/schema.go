package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubops/fitclub/internal/config"
)

// Tables in dependency order: parents before children so creation succeeds
// and DropAll can walk the list in reverse.
var tableNames = []string{
	"members",
	"trainers",
	"admins",
	"rooms",
	"fitness_goals",
	"health_metrics",
	"classes",
	"pt_sessions",
	"class_enrollments",
}

// Ensure creates any missing tables, then (re)creates the summary view and
// the class-capacity triggers. It is safe to call on every startup.
func Ensure(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := tableStmts(driver)
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}

	extra, err := viewAndTriggerStmts(driver)
	if err != nil {
		return err
	}
	for _, s := range extra {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create view/trigger: %w", err)
		}
	}
	return nil
}

// DropAll removes the view, triggers and every table. Child tables go first
// so foreign keys never block the drop.
func DropAll(ctx context.Context, db *sql.DB, driver string) error {
	stmts := []string{
		"DROP TRIGGER IF EXISTS trg_class_capacity_insert",
		"DROP TRIGGER IF EXISTS trg_class_capacity_update",
		"DROP VIEW IF EXISTS member_health_summary",
	}
	for i := len(tableNames) - 1; i >= 0; i-- {
		stmts = append(stmts, "DROP TABLE IF EXISTS "+tableNames[i])
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}

// tableStmts returns the CREATE TABLE statements for the given driver.
// Both renditions declare the same keys and constraints:
//   - unique emails for members and trainers, unique admin username/email,
//     unique room name
//   - positive capacities on rooms and classes
//   - one class per (room, time), one PT session per (trainer, time),
//     one enrollment per (member, class)
//   - deleting a member cascades to goals, metrics, sessions, enrollments;
//     trainers and rooms are restrict-protected while referenced
func tableStmts(driver string) ([]string, error) {
	switch driver {
	case config.DriverMySQL:
		return mysqlTables, nil
	case config.DriverSQLite:
		return sqliteTables, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// viewAndTriggerStmts returns statements for the member_health_summary view
// and the pair of triggers that reject a class whose capacity exceeds its
// room's capacity. View and triggers are dropped and recreated so changes
// to their bodies take effect on upgrade.
func viewAndTriggerStmts(driver string) ([]string, error) {
	switch driver {
	case config.DriverMySQL:
		return mysqlViewAndTriggers, nil
	case config.DriverSQLite:
		return sqliteViewAndTriggers, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

var mysqlTables = []string{
	`CREATE TABLE IF NOT EXISTS members (
		member_id     INT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(100) NOT NULL,
		email         VARCHAR(100) NOT NULL,
		date_of_birth DATE NULL,
		gender        VARCHAR(10) NULL,
		phone         VARCHAR(20) NULL,
		UNIQUE KEY uq_members_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS trainers (
		trainer_id     INT AUTO_INCREMENT PRIMARY KEY,
		name           VARCHAR(100) NOT NULL,
		email          VARCHAR(100) NOT NULL,
		specialization VARCHAR(100) NULL,
		UNIQUE KEY uq_trainers_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS admins (
		admin_id      INT AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(50) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name          VARCHAR(100) NOT NULL,
		email         VARCHAR(100) NOT NULL,
		UNIQUE KEY uq_admins_username (username),
		UNIQUE KEY uq_admins_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_id  INT AUTO_INCREMENT PRIMARY KEY,
		name     VARCHAR(50) NOT NULL,
		capacity INT NOT NULL,
		UNIQUE KEY uq_rooms_name (name),
		CONSTRAINT chk_room_capacity CHECK (capacity > 0)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS fitness_goals (
		goal_id      INT AUTO_INCREMENT PRIMARY KEY,
		member_id    INT NOT NULL,
		goal_type    VARCHAR(50) NOT NULL,
		target_value DECIMAL(6,2) NULL,
		start_date   DATE NULL,
		end_date     DATE NULL,
		CONSTRAINT fk_goals_member FOREIGN KEY (member_id)
			REFERENCES members (member_id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS health_metrics (
		metric_id    INT AUTO_INCREMENT PRIMARY KEY,
		member_id    INT NOT NULL,
		metric_type  VARCHAR(50) NOT NULL,
		metric_value DECIMAL(6,2) NOT NULL,
		recorded_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_metrics_member FOREIGN KEY (member_id)
			REFERENCES members (member_id) ON DELETE CASCADE,
		KEY idx_metrics_member_time (member_id, recorded_at)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS classes (
		class_id   INT AUTO_INCREMENT PRIMARY KEY,
		trainer_id INT NOT NULL,
		room_id    INT NOT NULL,
		class_name VARCHAR(100) NOT NULL,
		class_time DATETIME NOT NULL,
		capacity   INT NOT NULL,
		UNIQUE KEY uq_classes_room_time (room_id, class_time),
		CONSTRAINT chk_class_capacity CHECK (capacity > 0),
		CONSTRAINT fk_classes_trainer FOREIGN KEY (trainer_id)
			REFERENCES trainers (trainer_id) ON DELETE RESTRICT,
		CONSTRAINT fk_classes_room FOREIGN KEY (room_id)
			REFERENCES rooms (room_id) ON DELETE RESTRICT
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS pt_sessions (
		session_id   INT AUTO_INCREMENT PRIMARY KEY,
		member_id    INT NOT NULL,
		trainer_id   INT NOT NULL,
		session_time DATETIME NOT NULL,
		status       VARCHAR(20) NOT NULL DEFAULT 'scheduled',
		UNIQUE KEY uq_sessions_trainer_time (trainer_id, session_time),
		CONSTRAINT fk_sessions_member FOREIGN KEY (member_id)
			REFERENCES members (member_id) ON DELETE CASCADE,
		CONSTRAINT fk_sessions_trainer FOREIGN KEY (trainer_id)
			REFERENCES trainers (trainer_id) ON DELETE RESTRICT
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS class_enrollments (
		enrollment_id   INT AUTO_INCREMENT PRIMARY KEY,
		member_id       INT NOT NULL,
		class_id        INT NOT NULL,
		enrollment_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_enrollments_member_class (member_id, class_id),
		CONSTRAINT fk_enrollments_member FOREIGN KEY (member_id)
			REFERENCES members (member_id) ON DELETE CASCADE,
		CONSTRAINT fk_enrollments_class FOREIGN KEY (class_id)
			REFERENCES classes (class_id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

var mysqlViewAndTriggers = []string{
	`DROP VIEW IF EXISTS member_health_summary`,
	`CREATE VIEW member_health_summary AS
		SELECT m.member_id,
		       m.name  AS member_name,
		       m.email,
		       h.metric_type,
		       h.metric_value,
		       h.recorded_at AS last_metric_time
		FROM members m
		LEFT JOIN health_metrics h ON h.metric_id = (
			SELECT h2.metric_id
			FROM health_metrics h2
			WHERE h2.member_id = m.member_id
			ORDER BY h2.recorded_at DESC, h2.metric_id DESC
			LIMIT 1
		)`,
	`DROP TRIGGER IF EXISTS trg_class_capacity_insert`,
	`CREATE TRIGGER trg_class_capacity_insert
		BEFORE INSERT ON classes FOR EACH ROW
		BEGIN
			DECLARE room_cap INT;
			SELECT capacity INTO room_cap FROM rooms WHERE room_id = NEW.room_id;
			IF NEW.capacity > room_cap THEN
				SIGNAL SQLSTATE '45000'
					SET MESSAGE_TEXT = 'class capacity exceeds room capacity';
			END IF;
		END`,
	`DROP TRIGGER IF EXISTS trg_class_capacity_update`,
	`CREATE TRIGGER trg_class_capacity_update
		BEFORE UPDATE ON classes FOR EACH ROW
		BEGIN
			DECLARE room_cap INT;
			SELECT capacity INTO room_cap FROM rooms WHERE room_id = NEW.room_id;
			IF NEW.capacity > room_cap THEN
				SIGNAL SQLSTATE '45000'
					SET MESSAGE_TEXT = 'class capacity exceeds room capacity';
			END IF;
		END`,
}

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS members (
		member_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		date_of_birth DATE,
		gender        TEXT,
		phone         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS trainers (
		trainer_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL,
		email          TEXT NOT NULL UNIQUE,
		specialization TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		admin_id      INTEGER PRIMARY KEY AUTOINCREMENT,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_id  INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL UNIQUE,
		capacity INTEGER NOT NULL CHECK (capacity > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS fitness_goals (
		goal_id      INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id    INTEGER NOT NULL REFERENCES members (member_id) ON DELETE CASCADE,
		goal_type    TEXT NOT NULL,
		target_value NUMERIC,
		start_date   DATE,
		end_date     DATE
	)`,
	`CREATE TABLE IF NOT EXISTS health_metrics (
		metric_id    INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id    INTEGER NOT NULL REFERENCES members (member_id) ON DELETE CASCADE,
		metric_type  TEXT NOT NULL,
		metric_value NUMERIC NOT NULL,
		recorded_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_metrics_member_time
		ON health_metrics (member_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS classes (
		class_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		trainer_id INTEGER NOT NULL REFERENCES trainers (trainer_id) ON DELETE RESTRICT,
		room_id    INTEGER NOT NULL REFERENCES rooms (room_id) ON DELETE RESTRICT,
		class_name TEXT NOT NULL,
		class_time DATETIME NOT NULL,
		capacity   INTEGER NOT NULL CHECK (capacity > 0),
		UNIQUE (room_id, class_time)
	)`,
	`CREATE TABLE IF NOT EXISTS pt_sessions (
		session_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id    INTEGER NOT NULL REFERENCES members (member_id) ON DELETE CASCADE,
		trainer_id   INTEGER NOT NULL REFERENCES trainers (trainer_id) ON DELETE RESTRICT,
		session_time DATETIME NOT NULL,
		status       TEXT NOT NULL DEFAULT 'scheduled',
		UNIQUE (trainer_id, session_time)
	)`,
	`CREATE TABLE IF NOT EXISTS class_enrollments (
		enrollment_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id       INTEGER NOT NULL REFERENCES members (member_id) ON DELETE CASCADE,
		class_id        INTEGER NOT NULL REFERENCES classes (class_id) ON DELETE CASCADE,
		enrollment_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (member_id, class_id)
	)`,
}

var sqliteViewAndTriggers = []string{
	`DROP VIEW IF EXISTS member_health_summary`,
	`CREATE VIEW member_health_summary AS
		SELECT m.member_id,
		       m.name  AS member_name,
		       m.email,
		       h.metric_type,
		       h.metric_value,
		       h.recorded_at AS last_metric_time
		FROM members m
		LEFT JOIN health_metrics h ON h.metric_id = (
			SELECT h2.metric_id
			FROM health_metrics h2
			WHERE h2.member_id = m.member_id
			ORDER BY h2.recorded_at DESC, h2.metric_id DESC
			LIMIT 1
		)`,
	`DROP TRIGGER IF EXISTS trg_class_capacity_insert`,
	`CREATE TRIGGER trg_class_capacity_insert
		BEFORE INSERT ON classes FOR EACH ROW
		WHEN NEW.capacity > (SELECT capacity FROM rooms WHERE room_id = NEW.room_id)
		BEGIN
			SELECT RAISE(ABORT, 'class capacity exceeds room capacity');
		END`,
	`DROP TRIGGER IF EXISTS trg_class_capacity_update`,
	`CREATE TRIGGER trg_class_capacity_update
		BEFORE UPDATE ON classes FOR EACH ROW
		WHEN NEW.capacity > (SELECT capacity FROM rooms WHERE room_id = NEW.room_id)
		BEGIN
			SELECT RAISE(ABORT, 'class capacity exceeds room capacity');
		END`,
}
