package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/clients/dify"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/services"
)

type Services struct {
	User     services.UserService
	Catalog  services.CatalogService
	Dataset  services.AssessmentDatasetService
	Model    services.AssessmentModelService
	Engine   services.FusionEngineService
	Report   services.AssessmentReportService
	ArtJob   services.ArtJobService
	Workflow services.WorkflowService
	Chat     services.ChatService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	gateway, err := dify.NewClient(log, cfg.Dify)
	if err != nil {
		return Services{}, fmt.Errorf("init dify client: %w", err)
	}

	return Services{
		User:     services.NewUserService(db, log, r.User),
		Catalog:  services.NewCatalogService(db, log, r.EmotionRecognition, r.PaintingTherapy, r.ModelConfig, r.KnowledgeBase, r.KnowledgeDoc),
		Dataset:  services.NewAssessmentDatasetService(db, log, r.AssessmentDataset, r.AssessmentModel),
		Model:    services.NewAssessmentModelService(db, log, r.AssessmentModel),
		Engine:   services.NewFusionEngineService(db, log, r.FusionEngine),
		Report:   services.NewAssessmentReportService(db, log, r.Assessment, r.User, r.AssessmentModel),
		ArtJob:   services.NewArtJobService(db, log, r.ArtJob, r.PaintingTherapy),
		Workflow: services.NewWorkflowService(db, log, r.UploadFile, gateway, cfg.MediaBaseURL),
		Chat:     services.NewChatService(db, log, r.ChatRecord, r.User),
	}, nil
}
