package app

import (
	"log/slog"
	"net/http"

	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler"
	"github.com/chalklabs/tutorgate/internal/transport/http/middleware"
	"github.com/chalklabs/tutorgate/internal/transport/http/middleware/auth"
)

// maxRequestBodyBytes caps inbound payloads; base64 images get large, but
// not this large.
const maxRequestBodyBytes = 10 << 20

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger         *slog.Logger
	Storage        storage.Storage
	AllowedOrigins []string
}

// NewRouter creates and configures the HTTP router with all application
// routes and the middleware chain applied. opts must not be nil.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", repo.Infra.HealthCheck)
	mux.HandleFunc("POST /api/tutor", repo.Tutor.Chat)

	// Operator routes (require the stats password once one is set)
	statsAuth := auth.StatsAuth(opts.Storage)
	mux.Handle("GET /api/stats", statsAuth(http.HandlerFunc(repo.Stats.GetUsageStats)))
	mux.Handle("GET /api/stats/daily", statsAuth(http.HandlerFunc(repo.Stats.GetDailyUsage)))
	mux.Handle("GET /api/logs", statsAuth(http.HandlerFunc(repo.Stats.GetRequestLogs)))
	mux.Handle("DELETE /api/logs", statsAuth(http.HandlerFunc(repo.Stats.DeleteRequestLogs)))

	// Root returns JSON status; {$} keeps unknown paths on the 404 path
	mux.HandleFunc("GET /{$}", repo.Infra.RootStatus)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	// Body cap sits closest to the handlers
	h = middleware.MaxBytes(maxRequestBodyBytes)(h)

	// Request logging (if logger provided)
	if opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	// Request ID (always applied)
	h = middleware.RequestID(h)

	// CORS runs first so disallowed origins never reach handler logic
	h = middleware.CORS(opts.AllowedOrigins)(h)

	return h
}
