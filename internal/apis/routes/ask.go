package routes

import (
	"log"

	"askdb-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupAskRoutes(router *gin.Engine) {
	askHandler, err := di.GetAskHandler()
	if err != nil {
		log.Fatalf("Failed to get ask handler: %v", err)
	}

	api := router.Group("/api")
	{
		api.POST("/ask", askHandler.Ask)
	}
}
