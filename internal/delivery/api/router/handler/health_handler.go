package handler

import (
	"net/http"

	"identity/config"
	"identity/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the service info and liveness endpoints.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{serviceName: cfg.Env.ServiceName}
}

// ServiceInfo describes the running service.
type ServiceInfo struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// Info handles GET /.
func (h *HealthHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, &ServiceInfo{Service: h.serviceName, Status: "running"})
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
