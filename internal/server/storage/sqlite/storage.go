package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const memoryDSN = ":memory:"

// Storage keeps users and the site row in a single SQLite file
type Storage struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and applies pending
// migrations. ":memory:" gives a private in-memory database for tests.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	if dbPath != memoryDSN {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Один писатель; in-memory база живет, пока жив единственный conn
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := configure(ctx, db, dbPath == memoryDSN); err != nil {
		_ = db.Close()
		return nil, err
	}

	storage := &Storage{db: db}
	if err := storage.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func configure(ctx context.Context, db *sql.DB, memory bool) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if !memory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set %q: %w", pragma, err)
		}
	}
	return nil
}

// migrate применяет встроенные миграции через goose Provider,
// без глобального состояния goose
func (s *Storage) migrate(ctx context.Context) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// isUniqueViolation распознает нарушение UNIQUE по тексту ошибки драйвера
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// DB returns the underlying database connection for tests
func (s *Storage) DB() *sql.DB {
	return s.db
}
