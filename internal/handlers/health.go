package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Remainder Service API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
