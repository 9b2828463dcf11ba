package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"batepapo/internal/domain"
)

// statusFor maps a domain error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeParticipantExists:
		return http.StatusConflict
	case domain.CodeParticipantNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the status for err. Only validation failures carry a
// body; internal causes are logged, never sent.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(domain.Code(err))
	switch status {
	case http.StatusUnprocessableEntity:
		c.String(status, h.validationMessage(c, err))
	case http.StatusInternalServerError:
		h.log.Error("Request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.Status(status)
	default:
		c.Status(status)
	}
}

func (h *Handler) respondMalformedBody(c *gin.Context, err error) {
	h.log.Debug("Malformed request body", "path", c.FullPath(), "err", err)
	c.String(http.StatusUnprocessableEntity, h.translator.T(h.requestLocale(c), domain.TextValidationBody, nil))
}

func (h *Handler) validationMessage(c *gin.Context, err error) string {
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		return h.translator.T(h.requestLocale(c), domain.TextValidationInvalid, map[string]any{"Field": "body"})
	}
	key := domain.TextValidationInvalid
	switch vErr.Rule {
	case "required":
		key = domain.TextValidationRequired
	case "oneof":
		key = domain.TextValidationOneOf
	case "positive":
		key = domain.TextValidationPositive
	}
	return h.translator.T(h.requestLocale(c), key, map[string]any{"Field": vErr.Field, "Param": vErr.Param})
}

// requestLocale prefers the client's Accept-Language over the configured locale.
func (h *Handler) requestLocale(c *gin.Context) string {
	if lang := c.GetHeader("Accept-Language"); lang != "" {
		return lang
	}
	return h.locale
}
