package handlers

import (
	"net/http"

	"askdb-ai/internal/apis/dtos"
	"askdb-ai/internal/constants"
	"askdb-ai/internal/services"

	"github.com/gin-gonic/gin"
)

type AskHandler struct {
	askService services.AskService
}

func NewAskHandler(askService services.AskService) *AskHandler {
	return &AskHandler{
		askService: askService,
	}
}

func (h *AskHandler) Ask(c *gin.Context) {
	var req dtos.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorMsg := err.Error()
		c.JSON(http.StatusBadRequest, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = constants.DefaultSessionID
	}

	response, statusCode, err := h.askService.ProcessQuestion(c.Request.Context(), req.Question, sessionID)
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    response,
	})
}
