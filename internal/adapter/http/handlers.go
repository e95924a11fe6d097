package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
	Uptime  string `json:"uptime"`
}

type Handler struct {
	startedAt time.Time
}

func NewHandler() *Handler { return &Handler{startedAt: time.Now().UTC()} }

// Health is the liveness probe. It never touches MySQL or Redis, so a
// degraded dependency shows up as 503s on the flow routes, not here.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Service: "credfacil-api",
		Time:    time.Now().UTC().Format(time.RFC3339Nano),
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	})
}
