package numbering

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSequence is the durable Sequence backed by a SQLite counter table.
// Claims run inside an immediate transaction so concurrent finalizations
// serialize on the database write lock.
type SQLiteSequence struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteSequence opens (or creates) the counter database at dbPath.
func NewSQLiteSequence(dbPath string) (*SQLiteSequence, error) {
	const op = "numbering.NewSQLiteSequence"

	if dbPath == "" {
		return nil, fmt.Errorf("%s: dbPath must not be empty", op)
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("%s: failed to create database directory: %w", op, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	s := &SQLiteSequence{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteSequence) Close() error {
	return s.db.Close()
}

func (s *SQLiteSequence) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS invoice_sequences (
			tenant_id   TEXT    NOT NULL,
			year        INTEGER NOT NULL,
			last_number INTEGER NOT NULL DEFAULT 0,
			updated_at  TIMESTAMP,
			PRIMARY KEY (tenant_id, year)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create sequence table: %w", err)
	}
	return nil
}

// PeekNext implements Sequence.
func (s *SQLiteSequence) PeekNext(ctx context.Context, tenantID string, year int) (int, error) {
	const op = "PeekNext"

	var last int
	err := s.db.QueryRowContext(ctx,
		`SELECT last_number FROM invoice_sequences WHERE tenant_id = ? AND year = ?`,
		tenantID, year).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read sequence: %w", op, err)
	}
	return last + 1, nil
}

// Claim implements Sequence. The upsert and read happen in one immediate
// transaction; a lost write race surfaces as ErrSequenceConflict so the
// caller can retry.
func (s *SQLiteSequence) Claim(ctx context.Context, tenantID string, year int) (int, error) {
	const op = "Claim"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var claimed int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO invoice_sequences (tenant_id, year, last_number, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (tenant_id, year)
		DO UPDATE SET last_number = last_number + 1, updated_at = excluded.updated_at
		RETURNING last_number`,
		tenantID, year, time.Now().UTC()).Scan(&claimed)
	if err != nil {
		if isBusy(err) {
			return 0, fmt.Errorf("%s: %w: %v", op, ErrSequenceConflict, err)
		}
		return 0, fmt.Errorf("%s: failed to claim number: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		if isBusy(err) {
			return 0, fmt.Errorf("%s: %w: %v", op, ErrSequenceConflict, err)
		}
		return 0, fmt.Errorf("%s: failed to commit claim: %w", op, err)
	}
	return claimed, nil
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
