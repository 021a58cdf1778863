package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lauramoon/biztime/internal/appcontext"
	"go.uber.org/zap"
)

// All error responses share one envelope: {"error": {"message": ..., "status": ...}}.

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message, "status": status}})
}

func notFound(c *gin.Context, message string) {
	errorJSON(c, http.StatusNotFound, message)
}

func badRequest(c *gin.Context, message string) {
	errorJSON(c, http.StatusBadRequest, message)
}

func internalError(ctx *appcontext.Context, c *gin.Context, message string, err error) {
	ctx.Logger.Error(message, zap.Error(err))
	errorJSON(c, http.StatusInternalServerError, message)
}
