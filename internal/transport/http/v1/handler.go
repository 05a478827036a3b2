// Package v1 provides the HTTP handlers for the consultation API.
package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/juridico/consultd/internal/domain"
	"github.com/juridico/consultd/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/consult", h.Consult)
	e.GET("/v1/sessions", h.ListSessions)
	e.GET("/v1/sessions/:session_id", h.GetSession)
	e.DELETE("/v1/sessions/:session_id", h.DeleteSession)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// errorJSON maps a service error to an HTTP status and a stable error body.
// Storage internals never reach the client.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, domain.ErrorResponse{
			Error: "session not found", Code: "not_found",
		})
	case errors.Is(err, domain.ErrValidation):
		return c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Error: err.Error(), Code: "invalid_input",
		})
	case errors.Is(err, domain.ErrUpstream):
		return c.JSON(http.StatusBadGateway, domain.ErrorResponse{
			Error: "the legal assistant is temporarily unavailable", Code: "upstream_error",
		})
	case errors.Is(err, domain.ErrStorage):
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error: "internal server error", Code: "storage_error",
		})
	default:
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{
			Error: "internal server error", Code: "internal_error",
		})
	}
}
