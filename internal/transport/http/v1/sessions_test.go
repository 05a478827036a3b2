package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/juridico/consultd/internal/domain"
)

func TestListSessionsEmpty(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []domain.SessionSummary `json:"sessions"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Sessions)
}

func TestListSessionsAfterConsult(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t)

	sessionID, _, err := svc.Consult(context.Background(), "", "What is bailment?")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Sessions []domain.SessionSummary `json:"sessions"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.Len(t, resp.Sessions, 1) {
		assert.Equal(t, sessionID, resp.Sessions[0].ID)
		assert.NotEqual(t, domain.PlaceholderTitle, resp.Sessions[0].Title)
	}
}

func TestGetSessionWithMessages(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t)

	sessionID, _, err := svc.Consult(context.Background(), "", "What is bailment?")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+sessionID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sessionID)

	assert.NoError(t, h.GetSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Session
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.ID)
	if assert.Len(t, resp.Messages, 2) {
		assert.Equal(t, domain.RoleUser, resp.Messages[0].Role)
		assert.Equal(t, domain.RoleAssistant, resp.Messages[1].Role)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	e := echo.New()
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("missing")

	assert.NoError(t, h.GetSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSession(t *testing.T) {
	e := echo.New()
	h, svc := newTestHandler(t)

	sessionID, _, err := svc.Consult(context.Background(), "", "What is bailment?")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+sessionID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sessionID)

	assert.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second delete is a 404.
	req = httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+sessionID, nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(sessionID)

	assert.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
