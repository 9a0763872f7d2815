package handlers

import (
	"errors"
	"net/http"

	"triviaapi/middleware"
	"triviaapi/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// statusFor maps a service error kind to its HTTP status and message.
// Anything unrecognised is treated as unprocessable.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	default:
		return http.StatusUnprocessableEntity, "unprocessable"
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status, message := statusFor(err)
	if status == http.StatusUnprocessableEntity {
		logger.Warn("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	abortWithError(c, status, message)
}

// NotFound answers requests for unknown routes.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, "resource not found")
}

// MethodNotAllowed answers known routes called with an unsupported verb.
func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed, "method not allowed")
}
