package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Store is the relational store backed by a single SQLite file. Every
// operation is atomic with respect to itself; only Dehydrate spans multiple
// statements in one transaction.
type Store struct {
	config types.Config
	db     *sql.DB
}

// Open opens (creating if needed) the database named by config and ensures
// the schema, triggers, and indexes exist. Foreign-key enforcement is
// switched on for the connection.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", config.DBPath, err)
	}
	// modernc.org/sqlite serializes on a single connection; the pragma then
	// applies to every statement the store issues.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range triggerDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating triggers: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating indexes: %w", err)
		}
	}

	return &Store{config: config, db: db}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	return nil
}

// DBPath returns the path of the backing database file.
func (s *Store) DBPath() string { return s.config.DBPath }

// Backup copies the database file to dst. An empty dst derives a
// timestamped name next to the source file. File failures surface as
// *types.IOError. Returns the path written.
func (s *Store) Backup(dst string) (string, error) {
	if s.db == nil {
		return "", types.ErrStoreClosed
	}
	if dst == "" {
		stamp := time.Now().Format("20060102_150405")
		base := strings.TrimSuffix(s.config.DBPath, filepath.Ext(s.config.DBPath))
		dst = fmt.Sprintf("%s_backup_%s.db", base, stamp)
	}

	src, err := os.Open(s.config.DBPath)
	if err != nil {
		return "", &types.IOError{Op: "backup", Path: s.config.DBPath, Err: err}
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", &types.IOError{Op: "backup", Path: dst, Err: err}
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", &types.IOError{Op: "backup", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", &types.IOError{Op: "backup", Path: dst, Err: err}
	}
	return dst, nil
}

// timestamp formats t (UTC) the way the schema stores it.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTimestamp is the inverse of timestamp. Trigger-written values use
// second precision; both round-trip through RFC3339.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// constraintKinds are the SQLite error message prefixes that carry a
// constraint name after them.
var constraintKinds = []string{
	"UNIQUE constraint failed: ",
	"CHECK constraint failed: ",
	"NOT NULL constraint failed: ",
}

// integrityError maps a driver error onto *types.IntegrityError when it
// reports a constraint violation, keeping the violated constraint
// identifiable. Other errors pass through unchanged.
func integrityError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, kind := range constraintKinds {
		if i := strings.Index(msg, kind); i >= 0 {
			rest := msg[i+len(kind):]
			constraint := strings.TrimSpace(strings.SplitN(rest, " (", 2)[0])
			return &types.IntegrityError{Constraint: constraint, Err: err}
		}
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &types.IntegrityError{Constraint: "foreign key", Err: err}
	}
	return err
}
