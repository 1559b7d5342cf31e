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

// CatalogHandler serves the descriptive config entities: recognition models,
// painting therapies, LLM configs, knowledge bases and their documents.
type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createRecognitionRequest struct {
	RecogName     string `json:"recog_name" binding:"required"`
	APIEndpoint   string `json:"api_endpoint" binding:"required"`
	APIKey        string `json:"api_key"`
	SupportedType int16  `json:"supported_type"`
	IsActive      *bool  `json:"is_active"`
}

// POST /api/recognitions
func (h *CatalogHandler) CreateRecognition(c *gin.Context) {
	var req createRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cfg := &types.EmotionRecognition{
		RecogName:     req.RecogName,
		APIEndpoint:   req.APIEndpoint,
		APIKey:        req.APIKey,
		SupportedType: types.RecognitionType(req.SupportedType),
		IsActive:      true,
	}
	if cfg.SupportedType == 0 {
		cfg.SupportedType = types.RecognitionText
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	created, err := h.catalog.CreateRecognition(c.Request.Context(), cfg)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recognition": created})
}

// GET /api/recognitions
func (h *CatalogHandler) ListRecognitions(c *gin.Context) {
	recognitions, err := h.catalog.ListRecognitions(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"recognitions": recognitions})
}

type createTherapyRequest struct {
	TherapyName  string   `json:"therapy_name" binding:"required"`
	APIEndpoint  string   `json:"api_endpoint" binding:"required"`
	APIKey       string   `json:"api_key"`
	StyleOptions []string `json:"style_options"`
	IsActive     *bool    `json:"is_active"`
}

// POST /api/painting-therapies
func (h *CatalogHandler) CreateTherapy(c *gin.Context) {
	var req createTherapyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	therapy := &types.PaintingTherapy{
		TherapyName: req.TherapyName,
		APIEndpoint: req.APIEndpoint,
		APIKey:      req.APIKey,
		IsActive:    true,
	}
	if req.IsActive != nil {
		therapy.IsActive = *req.IsActive
	}
	if req.StyleOptions != nil {
		styles, err := json.Marshal(req.StyleOptions)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		therapy.StyleOptions = datatypes.JSON(styles)
	}
	created, err := h.catalog.CreateTherapy(c.Request.Context(), therapy)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"therapy": created})
}

// GET /api/painting-therapies
func (h *CatalogHandler) ListTherapies(c *gin.Context) {
	therapies, err := h.catalog.ListTherapies(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"therapies": therapies})
}

type createModelConfigRequest struct {
	ModelName   string         `json:"model_name" binding:"required"`
	APIEndpoint string         `json:"api_endpoint" binding:"required"`
	APIKey      string         `json:"api_key"`
	Params      map[string]any `json:"params"`
}

// POST /api/model-configs
func (h *CatalogHandler) CreateModelConfig(c *gin.Context) {
	var req createModelConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cfg := &types.ModelConfig{
		ModelName:   req.ModelName,
		APIEndpoint: req.APIEndpoint,
		APIKey:      req.APIKey,
		IsActive:    true,
	}
	if req.Params != nil {
		params, err := json.Marshal(req.Params)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		cfg.Params = datatypes.JSON(params)
	}
	created, err := h.catalog.CreateModelConfig(c.Request.Context(), cfg)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"model_config": created})
}

// GET /api/model-configs
func (h *CatalogHandler) ListModelConfigs(c *gin.Context) {
	configs, err := h.catalog.ListModelConfigs(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"model_configs": configs})
}

type createKnowledgeBaseRequest struct {
	KBName      string `json:"kb_name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/knowledge-bases
func (h *CatalogHandler) CreateKnowledgeBase(c *gin.Context) {
	var req createKnowledgeBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.catalog.CreateKnowledgeBase(c.Request.Context(), &types.KnowledgeBase{
		KBName:      req.KBName,
		Description: req.Description,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"knowledge_base": created})
}

// GET /api/knowledge-bases
func (h *CatalogHandler) ListKnowledgeBases(c *gin.Context) {
	bases, err := h.catalog.ListKnowledgeBases(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"knowledge_bases": bases})
}

type createKnowledgeDocRequest struct {
	DocTitle string `json:"doc_title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Tags     string `json:"tags"`
}

// POST /api/knowledge-bases/:id/docs
func (h *CatalogHandler) AddKnowledgeDoc(c *gin.Context) {
	kbID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_kb_id", err)
		return
	}
	var req createKnowledgeDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	created, err := h.catalog.AddKnowledgeDoc(c.Request.Context(), &types.KnowledgeDoc{
		KBID:     kbID,
		DocTitle: req.DocTitle,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"doc": created})
}
