// Package service implements the consultation business logic on top of the
// message store and the model provider client.
package service

import (
	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/config"
	"github.com/juridico/consultd/internal/policy"
	store "github.com/juridico/consultd/internal/repository"
)

type Service struct {
	store     store.Store
	llmClient llm.Client
	policy    *policy.Engine
	config    *config.Config
	locks     *sessionLocks
}

func New(st store.Store, llmClient llm.Client, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:     st,
		llmClient: llmClient,
		policy:    policyEngine,
		config:    cfg,
		locks:     newSessionLocks(),
	}
}
