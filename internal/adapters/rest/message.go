package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"batepapo/internal/domain"
	"batepapo/internal/ports/input"
)

func (h *Handler) HandlePostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondMalformedBody(c, err)
		return
	}
	err := h.messageUseCase.Post(c.Request.Context(), input.PostMessage{
		From: c.GetHeader(userHeader),
		To:   req.To,
		Text: req.Text,
		Type: req.Type,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) HandleListMessages(c *gin.Context) {
	var limit *int
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, &domain.ValidationError{Field: "limit", Rule: "positive"})
			return
		}
		limit = &n
	}
	messages, err := h.messageUseCase.List(c.Request.Context(), c.GetHeader(userHeader), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponses(messages))
}
