package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juridico/consultd/internal/domain"
)

// Consult processes one user turn.
// POST /v1/consult
func (h *Handler) Consult(c echo.Context) error {
	var req domain.ConsultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error: "invalid request body", Code: "invalid_input",
		})
	}

	ctx := c.Request().Context()
	sessionID, reply, err := h.service.Consult(ctx, req.SessionID, req.Message)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, domain.ConsultResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}
