// Package prompt assembles provider message lists for consultation turns.
package prompt

import (
	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/domain"
)

// System is the advisor system prompt sent with every completion request.
const System = `You are a highly qualified legal advisor. You respond only to legal questions: ` +
	`legal research, case analysis, statutory interpretation, legal procedures, and legal consultation. ` +
	`If asked about anything non-legal, reply that you are a specialized legal assistant and ask for a legal question. ` +
	`Structure answers with: the legal issues involved, step-by-step analysis, references to relevant laws and sections, ` +
	`landmark cases with citations where applicable, and a clear conclusion. ` +
	`Use clear, professional legal language while staying accessible. ` +
	`Maintain continuity with the earlier turns of the conversation.`

// Assemble builds the provider message list: system prompt, bounded
// history, then the new user message (already the final context entry).
func Assemble(context []domain.ContextMessage) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, 1+len(context))
	messages = append(messages, llm.ChatMessage{Role: "system", Content: System})
	for _, m := range context {
		messages = append(messages, llm.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return messages
}
