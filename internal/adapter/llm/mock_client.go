package llm

import (
	"context"
	"fmt"
	"time"
)

// MockClient is a mock implementation of Client for development and tests.
type MockClient struct{}

// NewMockClient creates a new mock provider client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

var _ Client = (*MockClient)(nil)

// CreateChatCompletion returns a canned response echoing the last user message.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}

	content := "[MOCK] This is a mock response from the provider client."
	if lastUserMessage != "" {
		content = fmt.Sprintf("[MOCK] Received your question: %q. This is a mock legal answer.", truncate(lastUserMessage, 100))
	}

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    "assistant",
					Content: content,
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     estimateTokens(req),
			CompletionTokens: len(content) / 4,
			TotalTokens:      estimateTokens(req) + len(content)/4,
		},
	}, nil
}

func estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
