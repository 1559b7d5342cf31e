package app

import (
	httpH "github.com/mindbridge/assessment-backend/internal/http/handlers"
	"github.com/mindbridge/assessment-backend/internal/logger"
)

type Handlers struct {
	User     *httpH.UserHandler
	Catalog  *httpH.CatalogHandler
	Dataset  *httpH.AssessmentDatasetHandler
	Model    *httpH.AssessmentModelHandler
	Engine   *httpH.FusionEngineHandler
	Report   *httpH.AssessmentReportHandler
	ArtJob   *httpH.ArtJobHandler
	Workflow *httpH.WorkflowHandler
	Chat     *httpH.ChatHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:     httpH.NewUserHandler(s.User),
		Catalog:  httpH.NewCatalogHandler(s.Catalog),
		Dataset:  httpH.NewAssessmentDatasetHandler(s.Dataset),
		Model:    httpH.NewAssessmentModelHandler(s.Model),
		Engine:   httpH.NewFusionEngineHandler(s.Engine),
		Report:   httpH.NewAssessmentReportHandler(s.Report),
		ArtJob:   httpH.NewArtJobHandler(s.ArtJob),
		Workflow: httpH.NewWorkflowHandler(s.Workflow),
		Chat:     httpH.NewChatHandler(s.Chat),
		Health:   httpH.NewHealthHandler(),
	}
}
