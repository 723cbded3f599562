package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/Gopher0727/StudyHub/middleware/log"
	"github.com/Gopher0727/StudyHub/pkg/assistant"
)

// AssistantHandler proxies Q&A prompts to the upstream AI endpoint.
type AssistantHandler struct {
	client *assistant.Client
	log    *logger.Logger
}

// NewAssistantHandler creates an assistant handler.
func NewAssistantHandler(client *assistant.Client, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{client: client, log: log}
}

// AskRequest carries the user's prompt.
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask forwards the prompt and returns the upstream response. The
// caller waits for the round trip; there is no retry.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "prompt is required",
		})
		return
	}

	response, err := h.client.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		h.log.Error("assistant request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to get AI response",
		})
		return
	}

	respondData(c, gin.H{
		"response": response,
	})
}
