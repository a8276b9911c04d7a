// Package handler aggregates the HTTP handler groups behind one repository
// the router wires routes against.
package handler

import (
	"time"

	"github.com/chalklabs/tutorgate/internal/config"
	"github.com/chalklabs/tutorgate/internal/provider"
	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/tokenizer"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler/infra"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler/stats"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler/tutor"
	"github.com/dgraph-io/ristretto/v2"
)

// Repo holds the handler groups for all HTTP routes.
type Repo struct {
	Tutor *tutor.Handlers
	Stats *stats.Handlers
	Infra *infra.Handlers
}

// NewRepo wires the handler groups from their shared dependencies.
func NewRepo(cfg *config.Config, prov provider.Provider, store storage.Storage, tok tokenizer.Tokenizer, cache *ristretto.Cache[string, any]) *Repo {
	return &Repo{
		Tutor: tutor.New(prov, store, tok, cfg),
		Stats: stats.New(store, cache),
		Infra: infra.New(cfg, time.Now()),
	}
}
