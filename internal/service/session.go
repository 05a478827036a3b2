package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/juridico/consultd/internal/domain"
)

// GetOrCreateSession returns the session with the given ID, or creates a
// new one when the ID is empty. An unknown explicit ID is an error.
func (s *Service) GetOrCreateSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return s.store.CreateSession(ctx)
	}
	return s.store.GetSession(ctx, sessionID)
}

// GetSession returns the session with all messages in sequence order.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.store.GetSession(ctx, sessionID)
}

// ListSessions returns session summaries, most recent first.
func (s *Service) ListSessions(ctx context.Context) ([]domain.SessionSummary, error) {
	return s.store.ListSessions(ctx)
}

// DeleteSession removes the session and all its messages.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	return s.store.DeleteSession(ctx, sessionID)
}

// RecordTurn appends the user message and then the assistant message. The
// user message always takes the lower sequence number.
func (s *Service) RecordTurn(ctx context.Context, sessionID, userText, assistantText string) (*domain.Message, *domain.Message, error) {
	userMsg, err := s.store.AppendMessage(ctx, sessionID, domain.RoleUser, userText)
	if err != nil {
		return nil, nil, fmt.Errorf("record user turn: %w", err)
	}
	assistantMsg, err := s.store.AppendMessage(ctx, sessionID, domain.RoleAssistant, assistantText)
	if err != nil {
		return nil, nil, fmt.Errorf("record assistant turn: %w", err)
	}
	return userMsg, assistantMsg, nil
}

// MaybeTitleSession derives the session title from the first user message
// once at least one user/assistant pair exists. No-op when the title has
// already been set.
func (s *Service) MaybeTitleSession(ctx context.Context, sessionID string) error {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.Title != domain.PlaceholderTitle {
		return nil
	}

	var firstUser string
	var hasAssistant bool
	for _, msg := range session.Messages {
		if msg.Role == domain.RoleUser && firstUser == "" {
			firstUser = msg.Content
		}
		if msg.Role == domain.RoleAssistant {
			hasAssistant = true
		}
	}
	if firstUser == "" || !hasAssistant {
		return nil
	}

	return s.store.UpdateTitle(ctx, sessionID, deriveTitle(firstUser, s.config.TitleMaxLen))
}

// deriveTitle truncates text to at most maxLen runes, preferring a word
// boundary, with a trailing ellipsis when shortened.
func deriveTitle(text string, maxLen int) string {
	title := strings.Join(strings.Fields(text), " ")
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}

	// No room for an ellipsis below four runes; hard cut to the cap.
	cut := maxLen - 3
	if cut < 1 {
		return string(runes[:maxLen])
	}
	truncated := string(runes[:cut])
	if idx := strings.LastIndex(truncated, " "); idx > cut/2 {
		truncated = truncated[:idx]
	}
	return strings.TrimSpace(truncated) + "..."
}
