package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/librivault/librivault-cli/internal/client/migrations"
	"github.com/librivault/librivault-cli/internal/common"
	"github.com/librivault/librivault-cli/internal/dbx"
	"github.com/librivault/librivault-cli/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the token in a one-row metadata table inside the local
// sqlite database.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, log: log}
}

// OpenDatabase opens (creating if needed) the local sqlite database at dsn
// and brings its schema up to date with the embedded goose migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migrating local store: %w", err)
	}

	return db, nil
}

// Save replaces the stored token. The delete and insert run in one
// transaction so a crash between them cannot leave the key absent.
func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM metadata WHERE key = ?`, common.TokenStorageKey); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO metadata (key, value) VALUES (?, ?)`, common.TokenStorageKey, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Read returns the persisted token or "". A storage failure is logged and
// reads as absent: the caller treats it as "logged out", not as fatal.
func (s *SQLiteStore) Read(ctx context.Context) string {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, common.TokenStorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		s.log.Warn(ctx, "token store unavailable, treating token as absent", "error", err)
		return ""
	}
	return value
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
