package app

import (
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/repos"
)

type Repos struct {
	User               repos.UserRepo
	UploadFile         repos.UploadFileRepo
	ModelConfig        repos.ModelConfigRepo
	KnowledgeBase      repos.KnowledgeBaseRepo
	KnowledgeDoc       repos.KnowledgeDocRepo
	EmotionRecognition repos.EmotionRecognitionRepo
	PaintingTherapy    repos.PaintingTherapyRepo
	AssessmentDataset  repos.AssessmentDatasetRepo
	AssessmentModel    repos.AssessmentModelRepo
	FusionEngine       repos.EmotionFusionEngineRepo
	Assessment         repos.PersonalizedAssessmentRepo
	ArtJob             repos.ArtGenerationJobRepo
	ChatRecord         repos.ChatRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:               repos.NewUserRepo(db, log),
		UploadFile:         repos.NewUploadFileRepo(db, log),
		ModelConfig:        repos.NewModelConfigRepo(db, log),
		KnowledgeBase:      repos.NewKnowledgeBaseRepo(db, log),
		KnowledgeDoc:       repos.NewKnowledgeDocRepo(db, log),
		EmotionRecognition: repos.NewEmotionRecognitionRepo(db, log),
		PaintingTherapy:    repos.NewPaintingTherapyRepo(db, log),
		AssessmentDataset:  repos.NewAssessmentDatasetRepo(db, log),
		AssessmentModel:    repos.NewAssessmentModelRepo(db, log),
		FusionEngine:       repos.NewEmotionFusionEngineRepo(db, log),
		Assessment:         repos.NewPersonalizedAssessmentRepo(db, log),
		ArtJob:             repos.NewArtGenerationJobRepo(db, log),
		ChatRecord:         repos.NewChatRecordRepo(db, log),
	}
}
