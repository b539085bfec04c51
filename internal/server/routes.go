package server

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/funnel/internal/handlers"
	"github.com/nfrund/funnel/web"
)

// RegisterRoutes sets up the routes owned by the server itself. Module
// routes are mounted when the modules boot.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/health", handlers.Health)
	s.E.GET("/metrics", metricsHandler(s.Metrics))
}
