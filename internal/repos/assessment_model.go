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

type AssessmentModelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, models []*types.AssessmentModel) ([]*types.AssessmentModel, error)
	GetByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (*types.AssessmentModel, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentModel, error)
	CountByDataset(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) (int64, error)
	// ClaimTraining is the atomic intent write of the training machine: it
	// moves the model into the training state unless it is already there.
	// The state check and the write are one statement, so two concurrent
	// starts can never both claim.
	ClaimTraining(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, fields map[string]interface{}) error
}

type assessmentModelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentModelRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentModelRepo {
	return &assessmentModelRepo{db: db, log: baseLog.With("repo", "AssessmentModelRepo")}
}

func (r *assessmentModelRepo) Create(ctx context.Context, tx *gorm.DB, models []*types.AssessmentModel) ([]*types.AssessmentModel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(models) == 0 {
		return []*types.AssessmentModel{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func (r *assessmentModelRepo) GetByID(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (*types.AssessmentModel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.AssessmentModel
	if err := transaction.WithContext(ctx).
		Preload("Dataset").
		Where("id = ?", modelID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *assessmentModelRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentModel, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.AssessmentModel
	if err := transaction.WithContext(ctx).
		Preload("Dataset").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentModelRepo) CountByDataset(ctx context.Context, tx *gorm.DB, datasetID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AssessmentModel{}).
		Where("dataset_id = ?", datasetID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *assessmentModelRepo) ClaimTraining(ctx context.Context, tx *gorm.DB, modelID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.AssessmentModel{}).
		Where("id = ? AND training_status <> ?", modelID, types.TrainingRunning).
		Update("training_status", types.TrainingRunning)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *assessmentModelRepo) UpdateFields(ctx context.Context, tx *gorm.DB, modelID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.AssessmentModel{}).
		Where("id = ?", modelID).
		Updates(fields).Error
}
