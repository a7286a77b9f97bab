package handlers

import (
	"go.uber.org/zap"

	"github.com/padraicbc/jrabrowser/comments"
	"github.com/padraicbc/jrabrowser/roster"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	roster   *roster.Store
	comments *comments.Store
	log      *zap.Logger
}

// New creates a Handler over the roster and comment stores.
func New(rs *roster.Store, cs *comments.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{roster: rs, comments: cs, log: log.Named("api")}
}
