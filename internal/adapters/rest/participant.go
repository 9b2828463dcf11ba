package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleJoin(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondMalformedBody(c, err)
		return
	}
	participant, err := h.participantUseCase.Join(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, joinResponse{Name: participant.Name})
}

func (h *Handler) HandleListParticipants(c *gin.Context) {
	participants, err := h.participantUseCase.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toParticipantResponses(participants))
}

// HandleStatus refreshes the heartbeat of the participant named in the user header.
func (h *Handler) HandleStatus(c *gin.Context) {
	if err := h.participantUseCase.Heartbeat(c.Request.Context(), c.GetHeader(userHeader)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
