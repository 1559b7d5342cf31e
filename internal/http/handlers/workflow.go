package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/clients/dify"
	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/services"
)

type WorkflowHandler struct {
	workflows services.WorkflowService
}

func NewWorkflowHandler(workflows services.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflows: workflows}
}

type runWorkflowRequest struct {
	UserID  string         `json:"user_id"`
	FileIDs []uuid.UUID    `json:"file_ids"`
	Inputs  map[string]any `json:"inputs"`
}

// POST /api/workflows/:kind/run
func (h *WorkflowHandler) Run(c *gin.Context) {
	kind, err := dify.ParseKind(c.Param("kind"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	var req runWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.UserID == "" {
		req.UserID = "anonymous"
	}
	result, err := h.workflows.Run(c.Request.Context(), kind, req.UserID, req.FileIDs, req.Inputs)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"task_id": result.TaskID,
		"result":  result.Result,
	})
}

// GET /api/workflows/:kind/tasks/:task_id
func (h *WorkflowHandler) GetStatus(c *gin.Context) {
	kind, err := dify.ParseKind(c.Param("kind"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	status, err := h.workflows.GetStatus(c.Request.Context(), kind, c.Param("task_id"))
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, status)
}
