package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"feedstream/backend/internal/service"
)

type HealthHandler struct {
	service service.FeedEntryService
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewHealthHandler(service service.FeedEntryService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Check)
}

// Check reports whether the store is reachable.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} errorResponse
// @Router /healthz [get]
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.service.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
