package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quantshow/assistant-gateway/pkg/config"
	"github.com/quantshow/assistant-gateway/pkg/models"
	"github.com/quantshow/assistant-gateway/pkg/orchestrator"
)

// TurnRunner runs one assistant turn. Satisfied by *orchestrator.Orchestrator;
// tests substitute a stub.
type TurnRunner interface {
	RunTurn(ctx context.Context, in orchestrator.TurnInput) (*models.TurnOutcome, error)
}

// Server is the HTTP boundary of the assistant gateway.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	cfg        *config.Config
	runner     TurnRunner
	catalog    []models.ToolDefinition
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, runner TurnRunner, catalog []models.ToolDefinition) *Server {
	s := &Server{
		echo:    echo.New(),
		cfg:     cfg,
		runner:  runner,
		catalog: catalog,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.Use(requestLogger())
	s.echo.Use(securityHeaders())

	s.echo.POST("/api/chat", s.chatHandler)
	s.echo.GET("/api/tools", s.toolsHandler)
	s.echo.GET("/health", s.healthHandler)

	metricsHandler := promhttp.Handler()
	s.echo.GET("/metrics", func(c *echo.Context) error {
		metricsHandler.ServeHTTP(c.Response(), c.Request())
		return nil
	})
}

// Start begins serving on addr. Blocks until the listener fails or the server
// is shut down.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
