package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"remainder-service/internal/store"
)

// NewRouter wires every route onto a gin engine. Kept separate from main so
// tests can drive the full routing table through httptest.
func NewRouter(remainders store.RemainderStore) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	api.GET("/health", Health)

	rem := api.Group("/remainders")
	rem.POST("", CreateRemainder(remainders))
	rem.GET("", GetRemainders(remainders))
	rem.GET("/upcoming", GetUpcomingRemainders(remainders))
	rem.GET("/:id", GetRemainder(remainders))
	rem.PUT("/:id", UpdateRemainder(remainders))
	rem.DELETE("/:id", DeleteRemainder(remainders))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}
