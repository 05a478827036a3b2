// Package policy evaluates incoming consult requests against a rego policy.
package policy

import (
	"context"
	"fmt"
	"os"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine for consult input.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.consult_policy.decision"),
		rego.Module("consult_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// NewEngineFromPath loads the policy from path, falling back to the default
// policy when path is empty.
func NewEngineFromPath(ctx context.Context, path string, maxMessageLen int) (*Engine, error) {
	if path == "" {
		return NewEngine(ctx, DefaultPolicy(maxMessageLen))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return NewEngine(ctx, string(content))
}

// Input is the document the policy is evaluated against.
type Input struct {
	Message string `json:"message"`
	Length  int    `json:"length"`
}

// Evaluate checks the consult policy for one request.
// Returns: decision ("allow" or "reject"), reason (optional), error.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default; no result means it did not load.
		return "allow", "default", nil
	}

	val := results[0].Expressions[0].Value
	if m, ok := val.(map[string]interface{}); ok {
		decision, _ := m["decision"].(string)
		reason, _ := m["reason"].(string)
		if decision != "" {
			return decision, reason, nil
		}
	}
	if s, ok := val.(string); ok {
		return s, "", nil
	}

	return "allow", "unexpected return type", nil
}

// DefaultPolicy returns the built-in consult policy: reject empty messages
// and messages over maxLen bytes.
func DefaultPolicy(maxLen int) string {
	return fmt.Sprintf(`
package consult_policy

default decision = {"decision": "allow", "reason": ""}

decision = {"decision": "reject", "reason": "message is empty"} {
	input.length == 0
}

decision = {"decision": "reject", "reason": "message too long"} {
	input.length > %d
}
`, maxLen)
}
