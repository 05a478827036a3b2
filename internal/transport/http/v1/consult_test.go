package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/juridico/consultd/internal/domain"
)

func postConsult(t *testing.T, h *Handler, body domain.ConsultRequest) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	reqBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/consult", bytes.NewReader(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Consult(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestConsultNewSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postConsult(t, h, domain.ConsultRequest{Message: "What is a contract?"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ConsultResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Reply)
}

func TestConsultExistingSession(t *testing.T) {
	h, _ := newTestHandler(t)

	first := postConsult(t, h, domain.ConsultRequest{Message: "What is a contract?"})
	var firstResp domain.ConsultResponse
	assert.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))

	second := postConsult(t, h, domain.ConsultRequest{
		SessionID: firstResp.SessionID,
		Message:   "And what makes one void?",
	})
	assert.Equal(t, http.StatusOK, second.Code)

	var secondResp domain.ConsultResponse
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.Equal(t, firstResp.SessionID, secondResp.SessionID)
}

func TestConsultUnknownSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postConsult(t, h, domain.ConsultRequest{SessionID: "missing", Message: "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
}

func TestConsultEmptyMessage(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postConsult(t, h, domain.ConsultRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_input", resp.Code)
}
