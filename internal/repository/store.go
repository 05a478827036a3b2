// Package store provides durable persistence for sessions and messages.
package store

import (
	"context"

	"github.com/juridico/consultd/internal/domain"
)

// Store is the message store interface used by the service layer.
type Store interface {
	// CreateSession persists a new session with a placeholder title and
	// returns it.
	CreateSession(ctx context.Context) (*domain.Session, error)

	// AppendMessage assigns the next sequence number for the session and
	// persists the message. Returns domain.ErrNotFound for an unknown
	// session.
	AppendMessage(ctx context.Context, sessionID string, role domain.Role, content string) (*domain.Message, error)

	// GetSession returns session metadata plus all messages ordered by
	// sequence. Returns domain.ErrNotFound if absent.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// ListSessions returns all session summaries, most recent first.
	ListSessions(ctx context.Context) ([]domain.SessionSummary, error)

	// UpdateTitle overwrites the session title. Idempotent. Returns
	// domain.ErrNotFound if absent.
	UpdateTitle(ctx context.Context, sessionID, title string) error

	// DeleteSession removes the session and all its messages atomically.
	// Returns domain.ErrNotFound if absent.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases the underlying storage resources.
	Close() error
}
