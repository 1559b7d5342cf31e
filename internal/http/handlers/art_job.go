package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/services"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type ArtJobHandler struct {
	jobs services.ArtJobService
}

func NewArtJobHandler(jobs services.ArtJobService) *ArtJobHandler {
	return &ArtJobHandler{jobs: jobs}
}

type createArtJobRequest struct {
	TherapyID     uuid.UUID `json:"therapy_id" binding:"required"`
	Prompt        string    `json:"prompt" binding:"required"`
	Style         string    `json:"style"`
	GuidanceScale float64   `json:"guidance_scale"`
}

// POST /api/art-jobs
func (h *ArtJobHandler) Create(c *gin.Context) {
	var req createArtJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.jobs.Create(c.Request.Context(), &types.ArtGenerationJob{
		TherapyID:     req.TherapyID,
		Prompt:        req.Prompt,
		Style:         req.Style,
		GuidanceScale: req.GuidanceScale,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"job": created})
}

// GET /api/art-jobs
func (h *ArtJobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"jobs": jobs})
}

// GET /api/art-jobs/:id
func (h *ArtJobHandler) Get(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_job_id", err)
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"job": job})
}

// POST /api/art-jobs/:id/generate
func (h *ArtJobHandler) Generate(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_job_id", err)
		return
	}
	job, err := h.jobs.TriggerGeneration(c.Request.Context(), jobID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"job":    job,
		"status": job.Status.String(),
	})
}
