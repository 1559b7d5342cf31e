package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/services"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type AssessmentDatasetHandler struct {
	datasets services.AssessmentDatasetService
}

func NewAssessmentDatasetHandler(datasets services.AssessmentDatasetService) *AssessmentDatasetHandler {
	return &AssessmentDatasetHandler{datasets: datasets}
}

type createDatasetRequest struct {
	DatasetName string `json:"dataset_name" binding:"required"`
	Description string `json:"description"`
	SampleCount int    `json:"sample_count"`
	StoragePath string `json:"storage_path"`
}

// POST /api/assessment-datasets
func (h *AssessmentDatasetHandler) Create(c *gin.Context) {
	var req createDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.datasets.Create(c.Request.Context(), &types.AssessmentDataset{
		DatasetName: req.DatasetName,
		Description: req.Description,
		SampleCount: req.SampleCount,
		StoragePath: req.StoragePath,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"dataset": created})
}

// GET /api/assessment-datasets
func (h *AssessmentDatasetHandler) List(c *gin.Context) {
	datasets, err := h.datasets.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"datasets": datasets})
}

// DELETE /api/assessment-datasets/:id
func (h *AssessmentDatasetHandler) Delete(c *gin.Context) {
	datasetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_dataset_id", err)
		return
	}
	if err := h.datasets.Delete(c.Request.Context(), datasetID); err != nil {
		// A still-referenced dataset is a conflict, not a plain bad request.
		if errors.Is(err, apperrors.ErrInvalidState) {
			response.RespondError(c, http.StatusConflict, "dataset_in_use", err)
			return
		}
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": datasetID})
}
