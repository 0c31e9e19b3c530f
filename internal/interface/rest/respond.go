package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"loadboard-service/internal/domain/apperrors"
	"loadboard-service/pkg/logger"
)

// fail writes the uniform error envelope.
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondError logs the failure and maps it to a status code. Storage
// internals stay in the log; the client sees only the generic message.
func respondError(c *gin.Context, log logger.Logger, err error, genericMsg string) {
	requestID := c.GetString("request_id")

	var fieldErr *apperrors.FieldError
	switch {
	case errors.As(err, &fieldErr):
		log.Warn("validation failed", "request_id", requestID, "field", fieldErr.Field, "error", err)
		fail(c, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("record not found", "request_id", requestID, "error", err)
		fail(c, http.StatusNotFound, err.Error())
	default:
		log.Error(genericMsg, "request_id", requestID, "error", err)
		fail(c, http.StatusInternalServerError, genericMsg)
	}
}
