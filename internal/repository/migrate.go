package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies pending goose migrations from dir. goose works on
// database/sql, so it gets its own short-lived lib/pq connection.
func Migrate(cfg DBConfig, dir string) error {
	db, err := sql.Open("postgres", cfg.ConnString()+"?sslmode=disable")
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
