package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Storefront API is running",
		"status":  "healthy",
	})
}
