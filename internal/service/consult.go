package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/domain"
	"github.com/juridico/consultd/internal/policy"
	"github.com/juridico/consultd/internal/prompt"
)

// Consult processes one user turn: validates the input, resolves the
// session, builds the bounded context, persists the user message, delegates
// to the model provider, and persists the reply.
//
// The user message is durably recorded before the provider call, so a
// provider failure never loses user input; the assistant message is simply
// absent until a retry succeeds. Turns on the same session are serialized;
// different sessions proceed concurrently.
func (s *Service) Consult(ctx context.Context, sessionID, userText string) (string, string, error) {
	userText = strings.TrimSpace(userText)

	decision, reason, err := s.policy.Evaluate(ctx, policy.Input{
		Message: userText,
		Length:  len(userText),
	})
	if err != nil {
		return "", "", fmt.Errorf("evaluate consult policy: %w", err)
	}
	if decision != "allow" {
		if reason == "" {
			reason = "rejected by policy"
		}
		return "", "", fmt.Errorf("%w: %s", domain.ErrValidation, reason)
	}

	session, err := s.GetOrCreateSession(ctx, sessionID)
	if err != nil {
		return "", "", err
	}

	release := s.locks.acquire(session.ID)
	defer release()

	// From here on the session is resolved; failures return its ID so the
	// caller can retry against the same conversation.
	messages, err := s.BuildContext(ctx, session.ID, userText)
	if err != nil {
		return session.ID, "", err
	}

	if _, err := s.store.AppendMessage(ctx, session.ID, domain.RoleUser, userText); err != nil {
		return session.ID, "", err
	}

	resp, err := s.llmClient.CreateChatCompletion(ctx, &llm.ChatCompletionRequest{
		Model:    s.config.LLMModel,
		Messages: prompt.Assemble(messages),
	})
	if err != nil {
		return session.ID, "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	reply := resp.Choices[0].Message.Content

	if _, err := s.store.AppendMessage(ctx, session.ID, domain.RoleAssistant, reply); err != nil {
		return session.ID, "", err
	}

	if err := s.MaybeTitleSession(ctx, session.ID); err != nil {
		// The turn itself succeeded; a failed title update is not fatal.
		log.Printf("WARN: failed to title session %s: %v", session.ID, err)
	}

	return session.ID, reply, nil
}
