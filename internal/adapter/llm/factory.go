package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvConsultMode is the environment variable name for mode selection.
	EnvConsultMode = "CONSULT_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates a provider client based on the CONSULT_MODE environment
// variable. If CONSULT_MODE=MOCK, returns a MockClient; otherwise returns a
// real HTTPClient.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	if os.Getenv(EnvConsultMode) == ModeMock {
		log.Println("CONSULT_MODE=MOCK detected, using mock provider client")
		return NewMockClient()
	}
	return NewHTTPClient(baseURL, apiKey, timeout)
}
