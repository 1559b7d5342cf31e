package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type EmotionFusionEngineRepo interface {
	Create(ctx context.Context, tx *gorm.DB, engines []*types.EmotionFusionEngine) ([]*types.EmotionFusionEngine, error)
	GetByID(ctx context.Context, tx *gorm.DB, engineID uuid.UUID) (*types.EmotionFusionEngine, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.EmotionFusionEngine, error)
	// RaiseAccuracy bumps latest_accuracy to the given value only when it is
	// an improvement. The guard lives in the statement, so concurrent
	// analyze calls keep the column monotonically non-decreasing.
	RaiseAccuracy(ctx context.Context, tx *gorm.DB, engineID uuid.UUID, accuracy float64) error
}

type emotionFusionEngineRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmotionFusionEngineRepo(db *gorm.DB, baseLog *logger.Logger) EmotionFusionEngineRepo {
	return &emotionFusionEngineRepo{db: db, log: baseLog.With("repo", "EmotionFusionEngineRepo")}
}

func (r *emotionFusionEngineRepo) Create(ctx context.Context, tx *gorm.DB, engines []*types.EmotionFusionEngine) ([]*types.EmotionFusionEngine, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(engines) == 0 {
		return []*types.EmotionFusionEngine{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&engines).Error; err != nil {
		return nil, err
	}
	return engines, nil
}

func (r *emotionFusionEngineRepo) GetByID(ctx context.Context, tx *gorm.DB, engineID uuid.UUID) (*types.EmotionFusionEngine, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.EmotionFusionEngine
	if err := transaction.WithContext(ctx).
		Preload("VoiceModel").
		Preload("VisionModel").
		Preload("BioModel").
		Where("id = ?", engineID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *emotionFusionEngineRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.EmotionFusionEngine, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EmotionFusionEngine
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *emotionFusionEngineRepo) RaiseAccuracy(ctx context.Context, tx *gorm.DB, engineID uuid.UUID, accuracy float64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.EmotionFusionEngine{}).
		Where("id = ? AND latest_accuracy < ?", engineID, accuracy).
		Update("latest_accuracy", accuracy).Error
}
