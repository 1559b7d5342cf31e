package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/fusion"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type FusionEngineService interface {
	Create(ctx context.Context, engine *types.EmotionFusionEngine) (*types.EmotionFusionEngine, error)
	Get(ctx context.Context, engineID uuid.UUID) (*types.EmotionFusionEngine, error)
	List(ctx context.Context) ([]*types.EmotionFusionEngine, error)
	// Analyze fuses the given modality signals through the engine's stored
	// weights. An inactive engine is rejected before any computation. The
	// engine's latest_accuracy only ever ratchets upward.
	Analyze(ctx context.Context, engineID uuid.UUID, signals map[string]float64) (*fusion.Result, error)
}

type fusionEngineService struct {
	db      *gorm.DB
	log     *logger.Logger
	engines repos.EmotionFusionEngineRepo
}

func NewFusionEngineService(db *gorm.DB, baseLog *logger.Logger, engines repos.EmotionFusionEngineRepo) FusionEngineService {
	return &fusionEngineService{
		db:      db,
		log:     baseLog.With("service", "FusionEngineService"),
		engines: engines,
	}
}

func (s *fusionEngineService) Create(ctx context.Context, engine *types.EmotionFusionEngine) (*types.EmotionFusionEngine, error) {
	if engine.ID == uuid.Nil {
		engine.ID = uuid.New()
	}
	if engine.EngineName == "" {
		return nil, fmt.Errorf("%w: missing engine_name", apperrors.ErrInvalidRequest)
	}
	if engine.FusionStrategy == "" {
		engine.FusionStrategy = types.FusionAverage
	}
	created, err := s.engines.Create(ctx, nil, []*types.EmotionFusionEngine{engine})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *fusionEngineService) Get(ctx context.Context, engineID uuid.UUID) (*types.EmotionFusionEngine, error) {
	return s.engines.GetByID(ctx, nil, engineID)
}

func (s *fusionEngineService) List(ctx context.Context) ([]*types.EmotionFusionEngine, error) {
	return s.engines.List(ctx, nil)
}

func (s *fusionEngineService) Analyze(ctx context.Context, engineID uuid.UUID, signals map[string]float64) (*fusion.Result, error) {
	engine, err := s.engines.GetByID(ctx, nil, engineID)
	if err != nil {
		return nil, err
	}
	if !engine.IsActive {
		return nil, apperrors.ErrEngineInactive
	}

	weights := map[string]float64{}
	if len(engine.Weights) > 0 {
		if err := json.Unmarshal(engine.Weights, &weights); err != nil {
			s.log.Warn("Unreadable engine weights, using defaults", "engine_id", engineID, "error", err)
			weights = map[string]float64{}
		}
	}
	result := fusion.Fuse(signals, weights)
	if err := s.engines.RaiseAccuracy(ctx, nil, engineID, result.Confidence); err != nil {
		return nil, err
	}
	return &result, nil
}
