package api

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/quantshow/assistant-gateway/pkg/metrics"
)

// requestLogger returns middleware that tags each request with an ID and logs
// method, path, status, and duration at completion.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			requestID := uuid.NewString()
			c.Response().Header().Set("X-Request-ID", requestID)

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			method := c.Request().Method
			path := c.Request().URL.Path
			status := 0
			if res, uerr := echo.UnwrapResponse(c.Response()); uerr == nil {
				status = res.Status
			}

			metrics.RequestCount.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())

			slog.Info("Request completed",
				"request_id", requestID,
				"method", method,
				"path", path,
				"status", status,
				"duration_ms", elapsed.Milliseconds())
			return err
		}
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}
