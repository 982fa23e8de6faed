package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safebite/backend/internal/service"
	"github.com/safebite/backend/internal/types"
)

// ChatHandler wires per-user chat sessions and the specialist directory.
type ChatHandler struct {
	chat    *service.ChatService
	profile *service.ProfileService
}

func NewChatHandler(chat *service.ChatService, profile *service.ProfileService) *ChatHandler {
	return &ChatHandler{
		chat:    chat,
		profile: profile,
	}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		chat.GET("/messages", h.GetMessages)
		chat.POST("/messages", h.SendMessage)
	}
	router.GET("/providers", h.GetProviders)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	session := h.chat.Session(userID)
	c.JSON(http.StatusOK, newChatResponse(session.Transcript(), session))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profile.LoadProfile(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	session := h.chat.Session(userID)
	transcript, err := session.Submit(ctx, req.Text, profile)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newChatResponse(transcript, session))
}

func (h *ChatHandler) GetProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": service.Providers()})
}
