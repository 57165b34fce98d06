package controllers

import (
	"errors"
	"net/http"

	"affiliate-hub/models"
	"affiliate-hub/services"

	"github.com/gin-gonic/gin"
)

type ChatbotController struct {
	chatbot *services.ChatbotService
}

func NewChatbotController(chatbot *services.ChatbotService) *ChatbotController {
	return &ChatbotController{chatbot: chatbot}
}

// @Summary Ask the shopping assistant
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param request body models.ChatbotRequest true "Visitor message"
// @Success 200 {object} models.Response
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/chatbot [post]
func (ctrl *ChatbotController) Ask(c *gin.Context) {
	var req models.ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "A message is required")
		return
	}

	reply, err := ctrl.chatbot.Ask(c.Request.Context(), req.Message)
	switch {
	case errors.Is(err, services.ErrChatbotNotConfigured):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "The assistant is not available right now",
		})
		return
	case errors.Is(err, services.ErrChatbotRateLimited):
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
			Success: false,
			Message: "The assistant is busy, try again in a moment",
		})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "The assistant could not answer, try again later",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Reply generated",
		Data:    gin.H{"reply": reply},
	})
}
