package services

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/types"
)

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// newTestDB opens a per-test in-memory database. The shared cache keeps the
// database alive across the pool's connections for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UploadFile{},
		&types.ModelConfig{},
		&types.KnowledgeBase{},
		&types.KnowledgeDoc{},
		&types.AssessmentDataset{},
		&types.AssessmentModel{},
		&types.EmotionRecognition{},
		&types.EmotionFusionEngine{},
		&types.PersonalizedAssessment{},
		&types.PaintingTherapy{},
		&types.ArtGenerationJob{},
		&types.ChatRecord{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
