package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.ChatResponse{Reply: "Please enter a message."})
		return
	}

	reply, err := ch.chatService.Chat(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, response_models.ChatResponse{Reply: "Please enter a message."})
		default:
			c.JSON(http.StatusInternalServerError, response_models.ChatResponse{Reply: "AI Assistant encountered an issue."})
		}
		return
	}

	c.JSON(http.StatusOK, response_models.ChatResponse{Reply: reply})
}
