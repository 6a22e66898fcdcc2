package preference

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wayfarer-ai/wayfarer/core"
)

// documentType tags preference rows so the table can later hold other
// document kinds without a schema change.
const documentType = "preference"

// SQLiteStore persists preferences in a SQLite database. Each row is a
// content-addressed document tagged with the owning user id and a type
// discriminator; rows are never updated or deleted.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and runs the
// schema migration.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewSQLiteStoreWithDB wraps an existing database connection.
func NewSQLiteStoreWithDB(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_documents_user_type ON documents(user_id, type);
	`)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save appends a preference fact for the user. Each call is a single
// autocommitted insert, so writes are atomic per call.
func (s *SQLiteStore) Save(ctx context.Context, userID, text string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, user_id, type, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, core.NewID(), userID, documentType, text, now)
	if err != nil {
		return fmt.Errorf("insert preference: %w", err)
	}
	return nil
}

// List returns all preference texts for the user in insertion order. An
// unknown user yields an empty slice, never an error.
func (s *SQLiteStore) List(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT content FROM documents
		WHERE user_id = ? AND type = ?
		ORDER BY created_at, id
	`, userID, documentType)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	texts := []string{}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		texts = append(texts, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return texts, nil
}
