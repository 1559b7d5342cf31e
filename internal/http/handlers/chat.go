package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/services"
)

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type sendQuestionRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	SessionID string    `json:"session_id"`
	Question  string    `json:"question" binding:"required"`
}

// POST /api/chat/questions
func (h *ChatHandler) SendQuestion(c *gin.Context) {
	var req sendQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record, err := h.chat.SendQuestion(c.Request.Context(), req.UserID, req.SessionID, req.Question)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"record": record})
}

// GET /api/chat/sessions/:session_id
func (h *ChatHandler) ListSession(c *gin.Context) {
	records, err := h.chat.ListBySession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"records": records})
}
