package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/services"
)

type AssessmentReportHandler struct {
	reports services.AssessmentReportService
}

func NewAssessmentReportHandler(reports services.AssessmentReportService) *AssessmentReportHandler {
	return &AssessmentReportHandler{reports: reports}
}

type generateReportRequest struct {
	UserID  uuid.UUID          `json:"user_id" binding:"required"`
	ModelID *uuid.UUID         `json:"model_id"`
	Signals map[string]float64 `json:"signals"`
}

// POST /api/assessments
func (h *AssessmentReportHandler) Generate(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	report, err := h.reports.GenerateReport(c.Request.Context(), req.UserID, req.ModelID, req.Signals)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"report": report})
}

// GET /api/assessments
func (h *AssessmentReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"reports": reports})
}

// GET /api/assessments/:id
func (h *AssessmentReportHandler) Get(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_report_id", err)
		return
	}
	report, err := h.reports.Get(c.Request.Context(), reportID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"report": report})
}

type refreshPlanRequest struct {
	Signals map[string]float64 `json:"signals"`
}

// POST /api/assessments/:id/refresh
func (h *AssessmentReportHandler) Refresh(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_report_id", err)
		return
	}
	var req refreshPlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	report, err := h.reports.RefreshPlan(c.Request.Context(), reportID, req.Signals)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"report": report})
}
