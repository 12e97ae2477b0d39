package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ak1058/Ai-Recipe-Maker/apperr"
	"github.com/ak1058/Ai-Recipe-Maker/logger"
)

// respondError converts a service failure into the structured error
// response. Internal faults are logged with their cause; the client only
// sees the message.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}
