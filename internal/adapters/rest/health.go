package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) HandleHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Store unreachable", "err", err)
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "DOWN", Timestamp: time.Now()})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "UP", Timestamp: time.Now()})
}
