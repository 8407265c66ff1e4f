package middlewares

import (
	"fmt"
	"net/http"

	"askdb-ai/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

// CustomRecoveryMiddleware converts panics into the standard error envelope
// instead of gin's plain-text response.
func CustomRecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		errorMsg := fmt.Sprintf("Internal server error: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
	})
}
