package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/funnel/internal/config"
)

// Health reports that the process is serving.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: config.Version})
}
