package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quantshow/assistant-gateway/pkg/version"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

// healthHandler handles GET /health.
// Liveness plus a config sanity check: the gateway is degraded when either
// secret is missing, since every turn needs the provider and most need the
// backend. External services are not probed here.
func (s *Server) healthHandler(c *echo.Context) error {
	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.cfg.Provider.APIKey == "" {
		status = healthStatusDegraded
		checks["provider"] = HealthCheck{Status: healthStatusDegraded, Message: "api key is not configured"}
	} else {
		checks["provider"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.cfg.Backend.APIKey == "" {
		status = healthStatusDegraded
		checks["backend"] = HealthCheck{Status: healthStatusDegraded, Message: "api key is not configured"}
	} else {
		checks["backend"] = HealthCheck{Status: healthStatusHealthy}
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Model:   s.cfg.Provider.Model,
		Tools:   len(s.catalog),
		Checks:  checks,
	})
}
