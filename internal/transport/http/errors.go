package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError — доменная ошибка → HTTP-статус.
//
//	ValidationError   → 422 {error, fields}
//	PreconditionError → 409
//	ErrNotFound       → 404
//	таймаут           → 504
//	остальное         → 500
func (h *Handler) writeError(c *gin.Context, ctx context.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"fields": domain.FieldErrors(err),
		})
	case errors.Is(err, domain.ErrPrecondition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "handler timeout path=%s", c.FullPath())
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "timeout"})
	default:
		h.log.Errorf(ctx, "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
