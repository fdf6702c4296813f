package http

import (
	"github.com/gin-gonic/gin"

	"voice-commander/internal/backend"
	"voice-commander/internal/command"
	"voice-commander/internal/history"
	"voice-commander/pkg/log"
)

// Handler exposes the command domain over HTTP.
type Handler interface {
	Process(c *gin.Context)
	Status(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       command.UseCase
	backends *backend.Registry
	history  *history.Service
}

// New creates the command HTTP handler.
func New(l log.Logger, uc command.UseCase, backends *backend.Registry, hist *history.Service) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		backends: backends,
		history:  hist,
	}
}
