package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/keeslam/CarRentalManager-sub004/pkg/logger"
	"go.uber.org/zap"
)

// HandleServiceError handles service errors with consistent patterns.
// Returns true if an error was handled (and response was sent), false otherwise.
//
// Usage:
//
//	result, err := h.service.DoSomething(ctx)
//	if HandleServiceError(c, err, "failed to do something") {
//	    return
//	}
func HandleServiceError(c *gin.Context, err error, fallbackMessage string) bool {
	if err == nil {
		return false
	}

	// Check for AppError first (typed business errors)
	if appErr, ok := err.(*AppError); ok {
		AppErrorResponse(c, appErr)
		return true
	}

	// Log the unexpected error for debugging
	logger.ErrorContext(c.Request.Context(), fallbackMessage,
		zap.Error(err),
	)

	ErrorResponse(c, http.StatusInternalServerError, fallbackMessage)
	return true
}
