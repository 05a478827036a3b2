package service

import (
	"context"
	"testing"

	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/config"
	"github.com/juridico/consultd/internal/policy"
	store "github.com/juridico/consultd/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		LLMModel:        "test-model",
		ContextMaxPairs: 3,
		TitleMaxLen:     50,
		MaxMessageLen:   8000,
	}
}

func newTestService(t *testing.T, client llm.Client) (*Service, store.Store) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	cfg := testConfig()
	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy(cfg.MaxMessageLen))
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	if client == nil {
		client = llm.NewMockClient()
	}
	return New(st, client, engine, cfg), st
}
