package infra

import (
	"net/http"
	"time"

	"github.com/chalklabs/tutorgate/internal/transport/http/handler/shared"
	"github.com/chalklabs/tutorgate/internal/version"
)

// RootStatus returns JSON status and version information at /.
func (h *Handlers) RootStatus(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"name":           version.Name,
		"version":        version.Version,
		"status":         "running",
		"uptime_seconds": int64(time.Since(h.StartTime).Seconds()),
		"endpoints": map[string]string{
			"tutor":  "/api/tutor",
			"health": "/health",
			"stats":  "/api/stats",
		},
	}, http.StatusOK)
}

// HealthCheck reports liveness and whether an upstream credential is set,
// so the web client can surface a useful message before the first request.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, map[string]any{
		"status":           "ok",
		"message":          "Tutor API is running",
		"openaiConfigured": h.Config.OpenAIConfigured(),
	}, http.StatusOK)
}
