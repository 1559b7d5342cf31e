package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

func seedEngine(t *testing.T, db *gorm.DB, active bool, weights string) *types.EmotionFusionEngine {
	t.Helper()
	engine := &types.EmotionFusionEngine{
		ID:             uuid.New(),
		EngineName:     "tri-modal",
		FusionStrategy: types.FusionAverage,
		IsActive:       active,
	}
	if weights != "" {
		engine.Weights = datatypes.JSON(weights)
	}
	if err := db.Create(engine).Error; err != nil {
		t.Fatalf("seed engine: %v", err)
	}
	return engine
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	t.Run("fuses with default weights", func(t *testing.T) {
		db := newTestDB(t)
		engineRepo := repos.NewEmotionFusionEngineRepo(db, log)
		svc := NewFusionEngineService(db, log, engineRepo)
		engine := seedEngine(t, db, true, "")

		result, err := svc.Analyze(ctx, engine.ID, map[string]float64{"voice": 0.9})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		// 0.33*0.9 + 0.33*0.5 + 0.34*0.5
		if result.Confidence != 0.632 {
			t.Errorf("confidence = %v, want 0.632", result.Confidence)
		}
		if result.Emotion != "positive" {
			t.Errorf("emotion = %q, want positive", result.Emotion)
		}

		reloaded, err := engineRepo.GetByID(ctx, nil, engine.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.LatestAccuracy != 0.632 {
			t.Errorf("latest accuracy = %v, want 0.632", reloaded.LatestAccuracy)
		}
	})

	t.Run("stored weights override defaults", func(t *testing.T) {
		db := newTestDB(t)
		engineRepo := repos.NewEmotionFusionEngineRepo(db, log)
		svc := NewFusionEngineService(db, log, engineRepo)
		engine := seedEngine(t, db, true, `{"voice":1,"vision":0,"bio":0}`)

		result, err := svc.Analyze(ctx, engine.ID, map[string]float64{"voice": 0.3})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if result.Confidence != 0.3 {
			t.Errorf("confidence = %v, want 0.3", result.Confidence)
		}
		if result.Emotion != "negative" {
			t.Errorf("emotion = %q, want negative", result.Emotion)
		}
	})

	t.Run("accuracy never regresses", func(t *testing.T) {
		db := newTestDB(t)
		engineRepo := repos.NewEmotionFusionEngineRepo(db, log)
		svc := NewFusionEngineService(db, log, engineRepo)
		engine := seedEngine(t, db, true, "")

		if _, err := svc.Analyze(ctx, engine.ID, map[string]float64{"voice": 0.9, "vision": 0.9, "bio": 0.9}); err != nil {
			t.Fatalf("first analyze: %v", err)
		}
		if _, err := svc.Analyze(ctx, engine.ID, map[string]float64{"voice": 0.1, "vision": 0.1, "bio": 0.1}); err != nil {
			t.Fatalf("second analyze: %v", err)
		}
		reloaded, err := engineRepo.GetByID(ctx, nil, engine.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.LatestAccuracy != 0.9 {
			t.Errorf("latest accuracy = %v, want 0.9 after low-confidence analyze", reloaded.LatestAccuracy)
		}
	})

	t.Run("inactive engine rejected before computation", func(t *testing.T) {
		db := newTestDB(t)
		engineRepo := repos.NewEmotionFusionEngineRepo(db, log)
		svc := NewFusionEngineService(db, log, engineRepo)
		engine := seedEngine(t, db, false, "")

		_, err := svc.Analyze(ctx, engine.ID, map[string]float64{"voice": 0.9})
		if !errors.Is(err, apperrors.ErrEngineInactive) {
			t.Fatalf("err = %v, want ErrEngineInactive", err)
		}
		reloaded, err := engineRepo.GetByID(ctx, nil, engine.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.LatestAccuracy != 0 {
			t.Errorf("accuracy mutated on rejected analyze: %v", reloaded.LatestAccuracy)
		}
	})

	t.Run("unknown engine", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewFusionEngineService(db, log, repos.NewEmotionFusionEngineRepo(db, log))

		_, err := svc.Analyze(ctx, uuid.New(), nil)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
