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

// Repos for the descriptive config entities. These have no lifecycle of
// their own; triggers only ever read them.

type PaintingTherapyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, therapies []*types.PaintingTherapy) ([]*types.PaintingTherapy, error)
	GetByID(ctx context.Context, tx *gorm.DB, therapyID uuid.UUID) (*types.PaintingTherapy, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.PaintingTherapy, error)
}

type paintingTherapyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPaintingTherapyRepo(db *gorm.DB, baseLog *logger.Logger) PaintingTherapyRepo {
	return &paintingTherapyRepo{db: db, log: baseLog.With("repo", "PaintingTherapyRepo")}
}

func (r *paintingTherapyRepo) Create(ctx context.Context, tx *gorm.DB, therapies []*types.PaintingTherapy) ([]*types.PaintingTherapy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(therapies) == 0 {
		return []*types.PaintingTherapy{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&therapies).Error; err != nil {
		return nil, err
	}
	return therapies, nil
}

func (r *paintingTherapyRepo) GetByID(ctx context.Context, tx *gorm.DB, therapyID uuid.UUID) (*types.PaintingTherapy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.PaintingTherapy
	if err := transaction.WithContext(ctx).
		Where("id = ?", therapyID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *paintingTherapyRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.PaintingTherapy, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.PaintingTherapy
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type EmotionRecognitionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, configs []*types.EmotionRecognition) ([]*types.EmotionRecognition, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.EmotionRecognition, error)
}

type emotionRecognitionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmotionRecognitionRepo(db *gorm.DB, baseLog *logger.Logger) EmotionRecognitionRepo {
	return &emotionRecognitionRepo{db: db, log: baseLog.With("repo", "EmotionRecognitionRepo")}
}

func (r *emotionRecognitionRepo) Create(ctx context.Context, tx *gorm.DB, configs []*types.EmotionRecognition) ([]*types.EmotionRecognition, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(configs) == 0 {
		return []*types.EmotionRecognition{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *emotionRecognitionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.EmotionRecognition, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EmotionRecognition
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type ModelConfigRepo interface {
	Create(ctx context.Context, tx *gorm.DB, configs []*types.ModelConfig) ([]*types.ModelConfig, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.ModelConfig, error)
}

type modelConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModelConfigRepo(db *gorm.DB, baseLog *logger.Logger) ModelConfigRepo {
	return &modelConfigRepo{db: db, log: baseLog.With("repo", "ModelConfigRepo")}
}

func (r *modelConfigRepo) Create(ctx context.Context, tx *gorm.DB, configs []*types.ModelConfig) ([]*types.ModelConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(configs) == 0 {
		return []*types.ModelConfig{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *modelConfigRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ModelConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ModelConfig
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
