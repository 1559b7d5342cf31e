package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/mindbridge/assessment-backend/internal/http/handlers"
	httpMW "github.com/mindbridge/assessment-backend/internal/http/middleware"
	"github.com/mindbridge/assessment-backend/internal/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	UserHandler     *httpH.UserHandler
	CatalogHandler  *httpH.CatalogHandler
	ModelHandler    *httpH.AssessmentModelHandler
	DatasetHandler  *httpH.AssessmentDatasetHandler
	EngineHandler   *httpH.FusionEngineHandler
	ReportHandler   *httpH.AssessmentReportHandler
	ArtJobHandler   *httpH.ArtJobHandler
	WorkflowHandler *httpH.WorkflowHandler
	ChatHandler     *httpH.ChatHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Users
		if cfg.UserHandler != nil {
			api.POST("/users", cfg.UserHandler.Create)
			api.GET("/users/:id", cfg.UserHandler.Get)
		}

		// Config catalog
		if cfg.CatalogHandler != nil {
			api.POST("/recognitions", cfg.CatalogHandler.CreateRecognition)
			api.GET("/recognitions", cfg.CatalogHandler.ListRecognitions)
			api.POST("/painting-therapies", cfg.CatalogHandler.CreateTherapy)
			api.GET("/painting-therapies", cfg.CatalogHandler.ListTherapies)
			api.POST("/model-configs", cfg.CatalogHandler.CreateModelConfig)
			api.GET("/model-configs", cfg.CatalogHandler.ListModelConfigs)
			api.POST("/knowledge-bases", cfg.CatalogHandler.CreateKnowledgeBase)
			api.GET("/knowledge-bases", cfg.CatalogHandler.ListKnowledgeBases)
			api.POST("/knowledge-bases/:id/docs", cfg.CatalogHandler.AddKnowledgeDoc)
		}

		// Datasets
		if cfg.DatasetHandler != nil {
			api.POST("/assessment-datasets", cfg.DatasetHandler.Create)
			api.GET("/assessment-datasets", cfg.DatasetHandler.List)
			api.DELETE("/assessment-datasets/:id", cfg.DatasetHandler.Delete)
		}

		// Assessment models
		if cfg.ModelHandler != nil {
			api.POST("/assessment-models", cfg.ModelHandler.Create)
			api.GET("/assessment-models", cfg.ModelHandler.List)
			api.GET("/assessment-models/:id", cfg.ModelHandler.Get)
			api.POST("/assessment-models/:id/train", cfg.ModelHandler.Train)
		}

		// Fusion engines
		if cfg.EngineHandler != nil {
			api.POST("/fusion-engines", cfg.EngineHandler.Create)
			api.GET("/fusion-engines", cfg.EngineHandler.List)
			api.GET("/fusion-engines/:id", cfg.EngineHandler.Get)
			api.POST("/fusion-engines/:id/analyze", cfg.EngineHandler.Analyze)
		}

		// Assessment reports
		if cfg.ReportHandler != nil {
			api.POST("/assessments", cfg.ReportHandler.Generate)
			api.GET("/assessments", cfg.ReportHandler.List)
			api.GET("/assessments/:id", cfg.ReportHandler.Get)
			api.POST("/assessments/:id/refresh", cfg.ReportHandler.Refresh)
		}

		// Art-therapy generation jobs
		if cfg.ArtJobHandler != nil {
			api.POST("/art-jobs", cfg.ArtJobHandler.Create)
			api.GET("/art-jobs", cfg.ArtJobHandler.List)
			api.GET("/art-jobs/:id", cfg.ArtJobHandler.Get)
			api.POST("/art-jobs/:id/generate", cfg.ArtJobHandler.Generate)
		}

		// Workflow gateway
		if cfg.WorkflowHandler != nil {
			api.POST("/workflows/:kind/run", cfg.WorkflowHandler.Run)
			api.GET("/workflows/:kind/tasks/:task_id", cfg.WorkflowHandler.GetStatus)
		}

		// Counseling chat
		if cfg.ChatHandler != nil {
			api.POST("/chat/questions", cfg.ChatHandler.SendQuestion)
			api.GET("/chat/sessions/:session_id", cfg.ChatHandler.ListSession)
		}
	}

	return r
}
