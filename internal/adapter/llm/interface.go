// Package llm provides an abstraction for the model provider client.
package llm

import "context"

// Client defines the interface for model provider operations.
type Client interface {
	// CreateChatCompletion sends a chat completion request (non-streaming).
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)
