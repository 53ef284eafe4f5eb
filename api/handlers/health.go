package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/models"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health exported for testing purposes
type Health struct {
	DB Pinger
}

// HealthCheckHandler reports liveness and whether the store answers a ping.
// It always returns 200 so a slow database does not restart the process.
func (h Health) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthCheckResponse{Alive: true, Database: "ok"}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if h.DB == nil {
		resp.Database = "unconfigured"
	} else if err := h.DB.PingContext(ctx); err != nil {
		zap.S().Warnw("database ping failed", "error", err)
		resp.Database = "unreachable"
	}
	writeJSON(w, http.StatusOK, resp)
}
