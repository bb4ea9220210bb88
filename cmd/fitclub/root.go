package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/clubops/fitclub/internal/cli"
	"github.com/clubops/fitclub/internal/club"
	"github.com/clubops/fitclub/internal/config"
	"github.com/clubops/fitclub/internal/database"
)

var dropTables bool

var rootCmd = &cobra.Command{
	Use:   "fitclub",
	Short: "Console manager for a fitness club",
	Long: `Fitclub is a console-driven membership and scheduling manager for a
fitness club: members, trainers, admins, rooms, classes, PT sessions,
health metrics and fitness goals, backed by a relational store.

Configuration comes from environment variables (a .env file is read if
present). DB_DRIVER selects "sqlite" (default, DB_PATH) or "mysql"
(DB_USER, DB_PASS, DB_HOST, DB_PORT, DB_NAME).

Run without arguments to get the interactive menu. Pass --drop-tables to
reset the database instead; you will be asked to confirm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load() // .env is optional

		cfg := config.Load()
		db, err := database.Open(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if dropTables {
			return confirmAndDrop(ctx, db, cfg.DBDriver)
		}

		log.Println("Initializing database...")
		if err := database.Ensure(ctx, db, cfg.DBDriver); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}

		svc := club.New(db)
		created, err := svc.EnsureDefaultAdmin(ctx)
		if err != nil {
			return fmt.Errorf("ensure default admin: %w", err)
		}
		if created {
			fmt.Println("Default admin account created (username: admin, password: admin123).")
		}

		cli.New(svc, os.Stdin, os.Stdout).Run(ctx)
		return nil
	},
}

// confirmAndDrop asks for an explicit "yes" before wiping the schema.
func confirmAndDrop(ctx context.Context, db *sql.DB, driver string) error {
	fmt.Println("WARNING: dropping all database tables...")
	if !promptYes("Are you sure you want to delete all tables?") {
		fmt.Println("Operation cancelled.")
		return nil
	}
	if err := database.DropAll(ctx, db, driver); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	fmt.Println("All tables, views and triggers dropped. Run again to recreate them.")
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&dropTables, "drop-tables", false,
		"drop all tables, the view and the triggers (asks for confirmation)")
}

// promptYes reads one line and reports whether it equals "yes".
func promptYes(label string) bool {
	fmt.Printf("%s (yes/no): ", label)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(sc.Text()), "yes")
}
