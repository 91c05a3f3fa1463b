package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// toolsHandler handles GET /api/tools. Returns the static tool catalog so
// operators can inspect what the model is offered without reading source.
func (s *Server) toolsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &ToolsResponse{
		Tools: s.catalog,
		Count: len(s.catalog),
	})
}
