package rest

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"batepapo/internal/ports/input"
	"batepapo/internal/ports/output"
)

// userHeader carries the caller's participant name.
const userHeader = "user"

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the chat endpoints using use cases.
type Handler struct {
	participantUseCase input.ParticipantUseCase
	messageUseCase     input.MessageUseCase
	translator         output.T
	store              Pinger
	locale             string
	log                *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	participantUseCase input.ParticipantUseCase,
	messageUseCase input.MessageUseCase,
	translator output.T,
	store Pinger,
	locale string,
	log *slog.Logger,
) *Handler {
	return &Handler{
		participantUseCase: participantUseCase,
		messageUseCase:     messageUseCase,
		translator:         translator,
		store:              store,
		locale:             locale,
		log:                log,
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/participants", h.HandleJoin)
	r.GET("/participants", h.HandleListParticipants)
	r.POST("/messages", h.HandlePostMessage)
	r.GET("/messages", h.HandleListMessages)
	r.POST("/status", h.HandleStatus)
	r.GET("/health", h.HandleHealth)
}
