package db

import (
	"database/sql"
	"fmt"
	"sync"

	"contact_service/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

var (
	pool    *sql.DB
	once    sync.Once
	connErr error
)

// Connect establishes the process-wide connection pool on first call and
// hands the same pool to every later caller. Concurrent first calls block on
// the once guard, so exactly one pool is ever opened.
func Connect(databaseURL string) (*sql.DB, error) {
	once.Do(func() {
		if databaseURL == "" {
			connErr = fmt.Errorf("database URL cannot be empty")
			return
		}

		d, err := sql.Open("postgres", databaseURL)
		if err != nil {
			connErr = fmt.Errorf("failed to open database connection: %w", err)
			return
		}

		if err := d.Ping(); err != nil {
			_ = d.Close()
			connErr = fmt.Errorf("database ping failed: %w", err)
			return
		}

		pool = d
	})
	return pool, connErr
}

// RunMigrations applies the embedded goose migrations, bringing the schema
// (including the unique constraints on users.email and contacts.phnumber)
// up to date.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
