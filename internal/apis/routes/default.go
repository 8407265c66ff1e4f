package routes

import (
	"log"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupDefaultRoutes(router *gin.Engine) {
	llmClient, err := di.GetLLMClient()
	if err != nil {
		log.Fatalf("Failed to get LLM client: %v", err)
	}
	modelInfo := llmClient.GetModelInfo()

	// Health check route, reports the serving model
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, dtos.Response{
			Success: true,
			Data: gin.H{
				"status":   "ok",
				"provider": modelInfo.Provider,
				"model":    modelInfo.Name,
			},
		})
	})

	SetupAskRoutes(router)
}
