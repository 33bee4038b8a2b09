package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Gift API is running",
		})
	})
}
