package pg

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	migrate_pg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/forumhub-dev/forumhub/internal/config"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	slog.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	slog.Info("successfully connected to db")
	return &Storage{db}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migrate_pg.WithInstance(db, &migrate_pg.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// postgres error classes we translate at the service boundary
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// constraintError re-wraps constraint violations into the shared taxonomy so
// storage-specific error types don't leak upward. Unique violations become
// conflicts (the uniqueness safety net for concurrent creators), the rest of
// the integrity family becomes validation errors.
func constraintError(err error, conflictMsg string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation:
		return &internal_errors.ErrorWithStatusCode{Message: conflictMsg, StatusCode: http.StatusConflict, Err: err}
	case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
		return internal_errors.WrapValidation("Write rejected by data constraints", err)
	}
	return err
}

// updateConstraintError is the mapping for update paths, where a duplicate is
// rejected input like any other integrity violation, not a concurrent-create
// race. Every constraint class becomes a validation error.
func updateConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
		return internal_errors.WrapValidation("Write rejected by data constraints", err)
	}
	return err
}
