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

type FusionEngineHandler struct {
	engines services.FusionEngineService
}

func NewFusionEngineHandler(engines services.FusionEngineService) *FusionEngineHandler {
	return &FusionEngineHandler{engines: engines}
}

type createEngineRequest struct {
	EngineName     string             `json:"engine_name" binding:"required"`
	VoiceModelID   *uuid.UUID         `json:"voice_model_id"`
	VisionModelID  *uuid.UUID         `json:"vision_model_id"`
	BioModelID     *uuid.UUID         `json:"bio_model_id"`
	FusionStrategy string             `json:"fusion_strategy"`
	Weights        map[string]float64 `json:"weights"`
	IsActive       *bool              `json:"is_active"`
}

// POST /api/fusion-engines
func (h *FusionEngineHandler) Create(c *gin.Context) {
	var req createEngineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	engine := &types.EmotionFusionEngine{
		EngineName:     req.EngineName,
		VoiceModelID:   req.VoiceModelID,
		VisionModelID:  req.VisionModelID,
		BioModelID:     req.BioModelID,
		FusionStrategy: types.FusionStrategy(req.FusionStrategy),
		IsActive:       true,
	}
	if req.IsActive != nil {
		engine.IsActive = *req.IsActive
	}
	if req.Weights != nil {
		weights, err := json.Marshal(req.Weights)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		engine.Weights = datatypes.JSON(weights)
	}
	created, err := h.engines.Create(c.Request.Context(), engine)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"engine": created})
}

// GET /api/fusion-engines
func (h *FusionEngineHandler) List(c *gin.Context) {
	engines, err := h.engines.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"engines": engines})
}

// GET /api/fusion-engines/:id
func (h *FusionEngineHandler) Get(c *gin.Context) {
	engineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_engine_id", err)
		return
	}
	engine, err := h.engines.Get(c.Request.Context(), engineID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"engine": engine})
}

type analyzeRequest struct {
	Signals map[string]float64 `json:"signals"`
}

// POST /api/fusion-engines/:id/analyze
func (h *FusionEngineHandler) Analyze(c *gin.Context) {
	engineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_engine_id", err)
		return
	}
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := h.engines.Analyze(c.Request.Context(), engineID, req.Signals)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"emotion":    result.Emotion,
		"confidence": result.Confidence,
	})
}
