package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juridico/consultd/internal/domain"
)

// ListSessions lists session summaries, most recent first.
// GET /v1/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.service.ListSessions(ctx)
	if err != nil {
		return errorJSON(c, err)
	}
	if sessions == nil {
		sessions = []domain.SessionSummary{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// GetSession retrieves a session with its ordered messages.
// GET /v1/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	ctx := c.Request().Context()

	session, err := h.service.GetSession(ctx, sessionID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session and all its messages.
// DELETE /v1/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	ctx := c.Request().Context()

	if err := h.service.DeleteSession(ctx, sessionID); err != nil {
		return errorJSON(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
