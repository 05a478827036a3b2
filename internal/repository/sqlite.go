package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/juridico/consultd/internal/domain"
)

// writeRetryDelay is the backoff before the single write retry. Storage
// writes are expected to be reliable; one retry covers transient lock
// contention.
const writeRetryDelay = 50 * time.Millisecond

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database at dsn and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			session_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, seq),
			FOREIGN KEY (session_id) REFERENCES sessions(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession creates a new session with the placeholder title.
func (s *SQLiteStore) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.New().String(),
		Title:     domain.PlaceholderTitle,
		CreatedAt: time.Now().UTC(),
	}
	err := s.writeWithRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO sessions (id, title, created_at) VALUES (?, ?, ?)`,
			session.ID, session.Title, session.CreatedAt)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create session: %v", domain.ErrStorage, err)
	}
	return session, nil
}

// AppendMessage persists a message with the next sequence number for the
// session. Sequence allocation and the insert happen in one transaction so
// a concurrent append on the same session cannot produce duplicates.
func (s *SQLiteStore) AppendMessage(ctx context.Context, sessionID string, role domain.Role, content string) (*domain.Message, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	msg := &domain.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	err := s.writeWithRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM sessions WHERE id = ?`, sessionID).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrNotFound
		}

		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?`,
			sessionID).Scan(&msg.Seq); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO messages (session_id, seq, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
			msg.SessionID, msg.Seq, msg.Role, msg.Content, msg.CreatedAt); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: append message: %v", domain.ErrStorage, err)
	}
	return msg, nil
}

// GetSession retrieves a session with its messages ordered by sequence.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM sessions WHERE id = ?`,
		sessionID).Scan(&session.ID, &session.Title, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get session: %v", domain.ErrStorage, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, seq, role, content, created_at FROM messages WHERE session_id = ? ORDER BY seq ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: get messages: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.SessionID, &msg.Seq, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan message: %v", domain.ErrStorage, err)
		}
		session.Messages = append(session.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read messages: %v", domain.ErrStorage, err)
	}
	return &session, nil
}

// ListSessions lists session summaries, most recent first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM sessions ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var sessions []domain.SessionSummary
	for rows.Next() {
		var sum domain.SessionSummary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan session: %v", domain.ErrStorage, err)
		}
		sessions = append(sessions, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read sessions: %v", domain.ErrStorage, err)
	}
	return sessions, nil
}

// UpdateTitle overwrites the session title.
func (s *SQLiteStore) UpdateTitle(ctx context.Context, sessionID, title string) error {
	err := s.writeWithRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx,
			`UPDATE sessions SET title = ? WHERE id = ?`, title, sessionID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return fmt.Errorf("%w: update title: %v", domain.ErrStorage, err)
	}
	return nil
}

// DeleteSession removes the session and its messages in one transaction.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	err := s.writeWithRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`DELETE FROM sessions WHERE id = ?`, sessionID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrNotFound
		}
		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
		}
		return fmt.Errorf("%w: delete session: %v", domain.ErrStorage, err)
	}
	return nil
}

// writeWithRetry runs fn and retries once after a short backoff. Domain
// errors (missing session, bad input) are not retried.
func (s *SQLiteStore) writeWithRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}

	select {
	case <-ctx.Done():
		return err
	case <-time.After(writeRetryDelay):
	}
	return fn()
}
