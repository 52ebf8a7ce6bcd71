// Package handler serves the site's JSON API.
package handler

import (
	"strings"

	"bizsite-api/internal/auth"
	"bizsite-api/internal/store"
	"bizsite-api/internal/upload"
)

type Config struct {
	// PublicURL prefixes returned upload links, e.g. "http://localhost:5000".
	PublicURL string
	// MaxUpload caps upload request bodies; 0 means no cap.
	MaxUpload int64
	// Admin enables POST /api/auth/login when set.
	Admin *auth.Admin
}

type Handler struct {
	store     store.Store
	files     upload.Storage
	admin     *auth.Admin
	publicURL string
	maxUpload int64
}

func New(st store.Store, files upload.Storage, cfg Config) *Handler {
	return &Handler{
		store:     st,
		files:     files,
		admin:     cfg.Admin,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		maxUpload: cfg.MaxUpload,
	}
}
