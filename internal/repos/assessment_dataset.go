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

type AssessmentDatasetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, datasets []*types.AssessmentDataset) ([]*types.AssessmentDataset, error)
	GetByID(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) (*types.AssessmentDataset, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentDataset, error)
	Delete(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) error
}

type assessmentDatasetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentDatasetRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentDatasetRepo {
	return &assessmentDatasetRepo{db: db, log: baseLog.With("repo", "AssessmentDatasetRepo")}
}

func (r *assessmentDatasetRepo) Create(ctx context.Context, tx *gorm.DB, datasets []*types.AssessmentDataset) ([]*types.AssessmentDataset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(datasets) == 0 {
		return []*types.AssessmentDataset{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&datasets).Error; err != nil {
		return nil, err
	}
	return datasets, nil
}

func (r *assessmentDatasetRepo) GetByID(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) (*types.AssessmentDataset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.AssessmentDataset
	if err := transaction.WithContext(ctx).
		Where("id = ?", datasetID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *assessmentDatasetRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentDataset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AssessmentDataset
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentDatasetRepo) Delete(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", datasetID).
		Delete(&types.AssessmentDataset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
