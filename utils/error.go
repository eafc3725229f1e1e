package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses for unrecoverable failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// BadRequest sends the plain-text 400 response used for every validation and
// store failure. The message is surfaced to the caller verbatim.
func BadRequest(c *gin.Context, message string) {
	logger := GetLogger()
	logger.Warn("request failed", zap.String("reason", message), zap.String("path", c.FullPath()))
	c.String(http.StatusBadRequest, message)
}
