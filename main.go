package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/config"
	"github.com/juridico/consultd/internal/policy"
	store "github.com/juridico/consultd/internal/repository"
	"github.com/juridico/consultd/internal/service"
	handler "github.com/juridico/consultd/internal/transport/http"
)

func main() {
	// Load .env if present; real env vars take precedence.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()

	log.Printf("Starting consultd...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Provider: %s (model %s)", cfg.LLMBaseURL, cfg.LLMModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize provider client
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	// Initialize input policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngineFromPath(ctx, cfg.PolicyPath, cfg.MaxMessageLen)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service and HTTP server
	svc := service.New(db, llmClient, policyEngine, cfg)
	server := handler.NewServer(svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Consultation API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consultd...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Consultd stopped")
}
