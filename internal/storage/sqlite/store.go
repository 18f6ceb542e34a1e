package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/oyasar/staffdir/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var _ model.KeyValueStore = (*Store)(nil)

// Store is a device-local string key-value store backed by a single
// SQLite file. It is the persistence boundary of the application: the
// state blob, the view-mode preference and the UI language all live in
// one app_state table.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database file <name>.db under dir
// and applies pending migrations.
func New(ctx context.Context, dir, name string) (*Store, error) {
	if name == "" {
		return nil, fmt.Errorf("database name is empty")
	}
	if dir == "" {
		return nil, fmt.Errorf("database directory is empty")
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	params := url.Values{
		"mode":    []string{"rwc"},
		"_pragma": []string{"journal_mode(WAL)", "busy_timeout(10000)", "synchronous(NORMAL)"},
	}
	dsn := fmt.Sprintf("file:%s?%s", filepath.Join(dir, name+".db"), params.Encode())

	return open(ctx, dsn)
}

// NewInMemory opens a private in-memory database, used by tests.
func NewInMemory(ctx context.Context, name string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	return open(ctx, dsn)
}

func open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer; the core is single-threaded by design.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// NewWithDB wraps an already-open database handle. The schema must be
// in place; no migrations are run.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key, or model.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM app_state WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	const query = `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

// Delete removes key if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM app_state WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
