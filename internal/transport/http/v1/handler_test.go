package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/juridico/consultd/internal/adapter/llm"
	"github.com/juridico/consultd/internal/config"
	"github.com/juridico/consultd/internal/domain"
	"github.com/juridico/consultd/internal/policy"
	store "github.com/juridico/consultd/internal/repository"
	"github.com/juridico/consultd/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *service.Service) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	cfg := &config.Config{
		LLMModel:        "test-model",
		ContextMaxPairs: 5,
		TitleMaxLen:     50,
		MaxMessageLen:   8000,
	}
	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy(cfg.MaxMessageLen))
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	svc := service.New(st, llm.NewMockClient(), engine, cfg)
	return NewHandler(svc), svc
}

func TestErrorJSONStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"validation", fmt.Errorf("%w: message is empty", domain.ErrValidation), http.StatusBadRequest, "invalid_input"},
		{"upstream", fmt.Errorf("%w: timeout", domain.ErrUpstream), http.StatusBadGateway, "upstream_error"},
		{"storage", fmt.Errorf("%w: disk full", domain.ErrStorage), http.StatusInternalServerError, "storage_error"},
		{"unclassified", errors.New("rego evaluation failed"), http.StatusInternalServerError, "internal_error"},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, errorJSON(c, tc.err))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp domain.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.NotContains(t, resp.Error, "rego")
		})
	}
}
