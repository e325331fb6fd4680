package api

import (
	"fmt"
	"net/http"
	"strconv"

	"fitflow/fitness-app/internal/repository"
	"fitflow/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the coach chat endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type SendMessageResponse struct {
	Response  string `json:"response"`
	MessageID string `json:"messageId"`
}

// SendMessage forwards a user message to the coach persona and stores the
// exchange.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get a chat response")
		return
	}

	c.JSON(http.StatusOK, SendMessageResponse{Response: msg.Response, MessageID: msg.ID})
}

// History returns the most recent chat exchanges, newest first. The optional
// ?limit query parameter caps the count.
func (h *ChatHandler) History(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	limit := repository.DefaultChatHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	history, err := h.chatService.History(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}
	c.JSON(http.StatusOK, history)
}
