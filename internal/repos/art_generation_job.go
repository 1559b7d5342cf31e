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

type ArtGenerationJobRepo interface {
	Create(ctx context.Context, tx *gorm.DB, jobs []*types.ArtGenerationJob) ([]*types.ArtGenerationJob, error)
	GetByID(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.ArtGenerationJob, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.ArtGenerationJob, error)
	// ClaimRunning is the atomic intent write of the generation machine.
	ClaimRunning(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, fields map[string]interface{}) error
}

type artGenerationJobRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArtGenerationJobRepo(db *gorm.DB, baseLog *logger.Logger) ArtGenerationJobRepo {
	return &artGenerationJobRepo{db: db, log: baseLog.With("repo", "ArtGenerationJobRepo")}
}

func (r *artGenerationJobRepo) Create(ctx context.Context, tx *gorm.DB, jobs []*types.ArtGenerationJob) ([]*types.ArtGenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(jobs) == 0 {
		return []*types.ArtGenerationJob{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *artGenerationJobRepo) GetByID(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.ArtGenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.ArtGenerationJob
	if err := transaction.WithContext(ctx).
		Preload("Therapy").
		Where("id = ?", jobID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *artGenerationJobRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ArtGenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ArtGenerationJob
	if err := transaction.WithContext(ctx).
		Preload("Therapy").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *artGenerationJobRepo) ClaimRunning(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.ArtGenerationJob{}).
		Where("id = ? AND status <> ?", jobID, types.JobRunning).
		Update("status", types.JobRunning)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *artGenerationJobRepo) UpdateFields(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ArtGenerationJob{}).
		Where("id = ?", jobID).
		Updates(fields).Error
}
