package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mindbridge/assessment-backend/internal/http/response"
	"github.com/mindbridge/assessment-backend/internal/services"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type AssessmentModelHandler struct {
	models services.AssessmentModelService
}

func NewAssessmentModelHandler(models services.AssessmentModelService) *AssessmentModelHandler {
	return &AssessmentModelHandler{models: models}
}

type createModelRequest struct {
	DatasetID      uuid.UUID      `json:"dataset_id" binding:"required"`
	ModelName      string         `json:"model_name" binding:"required"`
	Backbone       string         `json:"backbone"`
	TrainingParams map[string]any `json:"training_params"`
}

// POST /api/assessment-models
func (h *AssessmentModelHandler) Create(c *gin.Context) {
	var req createModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	model := &types.AssessmentModel{
		DatasetID: req.DatasetID,
		ModelName: req.ModelName,
		Backbone:  req.Backbone,
	}
	if model.Backbone == "" {
		model.Backbone = "fusion-transformer"
	}
	if req.TrainingParams != nil {
		params, err := json.Marshal(req.TrainingParams)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		model.TrainingParams = datatypes.JSON(params)
	}
	created, err := h.models.Create(c.Request.Context(), model)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"model": created})
}

// GET /api/assessment-models
func (h *AssessmentModelHandler) List(c *gin.Context) {
	models, err := h.models.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"models": models})
}

// GET /api/assessment-models/:id
func (h *AssessmentModelHandler) Get(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_model_id", err)
		return
	}
	model, err := h.models.Get(c.Request.Context(), modelID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"model": model})
}

// POST /api/assessment-models/:id/train
func (h *AssessmentModelHandler) Train(c *gin.Context) {
	modelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_model_id", err)
		return
	}
	model, err := h.models.Train(c.Request.Context(), modelID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"model":  model,
		"status": model.TrainingStatus.String(),
	})
}
