package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/pkg/response"
)

type ChatHandler struct {
	Svc    *application.ChatService
	Logger *logrus.Logger
}

func NewChatHandler(svc *application.ChatService, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{Svc: svc, Logger: logger}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Relay handles POST /api/chat.
func (h *ChatHandler) Relay(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, h.Logger, err, application.MsgNoMessage)
		return
	}

	reply, err := h.Svc.Relay(c.Request.Context(), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chatResponse{Reply: reply})
}
