package domain

import "errors"

// Error taxonomy. Callers classify with errors.Is; lower layers wrap these
// with context via fmt.Errorf and %w.
var (
	// ErrNotFound means the referenced session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the input was rejected (empty or oversized text).
	ErrValidation = errors.New("invalid input")

	// ErrUpstream means the model provider call failed or timed out.
	ErrUpstream = errors.New("upstream provider error")

	// ErrStorage means a durable-storage operation failed.
	ErrStorage = errors.New("storage error")
)
