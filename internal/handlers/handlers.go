// Package handlers contains the HTTP handlers for the training-log API.
package handlers

import (
	"database/sql"

	"github.com/rs/zerolog"

	"pawtrail/internal/blobstore"
	"pawtrail/internal/config"
	"pawtrail/internal/token"
)

// Handlers carries the dependencies every route needs. Everything is injected
// at startup; there are no package-level globals.
type Handlers struct {
	db     *sql.DB
	tokens *token.Manager
	blob   blobstore.Uploader
	log    zerolog.Logger
	cfg    *config.Config
}

func New(db *sql.DB, tokens *token.Manager, blob blobstore.Uploader, log zerolog.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:     db,
		tokens: tokens,
		blob:   blob,
		log:    log,
		cfg:    cfg,
	}
}
