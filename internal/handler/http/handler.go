package http

import (
	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/store"
)

type Handler struct {
	saves store.RemoteSaveRepository
	token string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler over the remote save repository. The
// static token from cfg is the single accepted credential; it also names the
// owner whose document the API operates on.
func NewHandler(saves store.RemoteSaveRepository, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		saves:  saves,
		token:  cfg.Token,
		logger: logger,
	}
}
