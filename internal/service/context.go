package service

import (
	"context"

	"github.com/juridico/consultd/internal/domain"
)

// BuildContext assembles the bounded message history handed to the model
// provider: the most recent complete user/assistant pairs of the session,
// followed by the new user message. Truncation drops whole pairs from the
// oldest end; the new user message is always the final entry. The result is
// fully determined by the stored messages and userText.
func (s *Service) BuildContext(ctx context.Context, sessionID, userText string) ([]domain.ContextMessage, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pairs := completePairs(session.Messages)
	if max := s.config.ContextMaxPairs; max >= 0 && len(pairs) > max {
		pairs = pairs[len(pairs)-max:]
	}

	out := make([]domain.ContextMessage, 0, len(pairs)*2+1)
	for _, p := range pairs {
		out = append(out,
			domain.ContextMessage{Role: domain.RoleUser, Content: p.user},
			domain.ContextMessage{Role: domain.RoleAssistant, Content: p.assistant},
		)
	}
	out = append(out, domain.ContextMessage{Role: domain.RoleUser, Content: userText})
	return out, nil
}

type turnPair struct {
	user      string
	assistant string
}

// completePairs walks messages in sequence order and pairs each user
// message with the assistant message that follows it. Messages without a
// counterpart (a user turn whose reply never arrived) form no pair and are
// excluded from the context window.
func completePairs(messages []domain.Message) []turnPair {
	var pairs []turnPair
	var pendingUser string
	var havePending bool

	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleUser:
			pendingUser = msg.Content
			havePending = true
		case domain.RoleAssistant:
			if havePending {
				pairs = append(pairs, turnPair{user: pendingUser, assistant: msg.Content})
				havePending = false
			}
		}
	}
	return pairs
}
