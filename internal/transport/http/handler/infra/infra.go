// Package infra serves the unauthenticated status endpoints.
package infra

import (
	"time"

	"github.com/chalklabs/tutorgate/internal/config"
)

// Handlers holds the dependencies for infrastructure HTTP handlers.
type Handlers struct {
	Config    *config.Config
	StartTime time.Time
}

// New creates a new instance of infrastructure handlers.
func New(cfg *config.Config, startTime time.Time) *Handlers {
	return &Handlers{
		Config:    cfg,
		StartTime: startTime,
	}
}
