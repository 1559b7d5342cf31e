package app

import (
	"time"

	"github.com/mindbridge/assessment-backend/internal/clients/dify"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/utils"
)

type Config struct {
	Port         string
	MediaBaseURL string
	Dify         dify.Config
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	mediaBaseURL := utils.GetEnv("MEDIA_BASE_URL", "http://localhost:"+port, log)

	runTimeoutSeconds := utils.GetEnvAsInt("DIFY_RUN_TIMEOUT", 300, log)
	statusTimeoutSeconds := utils.GetEnvAsInt("DIFY_STATUS_TIMEOUT", 30, log)

	return Config{
		Port:         port,
		MediaBaseURL: mediaBaseURL,
		Dify: dify.Config{
			BaseURL:       utils.GetEnv("DIFY_BASE_URL", "http://localhost:8001", log),
			RunTimeout:    time.Duration(runTimeoutSeconds) * time.Second,
			StatusTimeout: time.Duration(statusTimeoutSeconds) * time.Second,
			Workflows: map[dify.WorkflowKind]dify.WorkflowConfig{
				dify.KindDiagnostic: {
					WorkflowID: utils.GetEnv("DIFY_DIAGNOSTIC_WORKFLOW_ID", "", log),
					APIKey:     utils.GetEnv("DIFY_DIAGNOSTIC_API_KEY", "", log),
					FileField:  "file",
				},
				dify.KindArtTherapy: {
					WorkflowID: utils.GetEnv("DIFY_ART_WORKFLOW_ID", "", log),
					APIKey:     utils.GetEnv("DIFY_ART_API_KEY", "", log),
					FileField:  "work_file",
				},
			},
		},
	}
}
