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

type PersonalizedAssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reports []*types.PersonalizedAssessment) ([]*types.PersonalizedAssessment, error)
	GetByID(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) (*types.PersonalizedAssessment, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.PersonalizedAssessment, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, reportID uuid.UUID, fields map[string]interface{}) error
}

type personalizedAssessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonalizedAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) PersonalizedAssessmentRepo {
	return &personalizedAssessmentRepo{db: db, log: baseLog.With("repo", "PersonalizedAssessmentRepo")}
}

func (r *personalizedAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, reports []*types.PersonalizedAssessment) ([]*types.PersonalizedAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(reports) == 0 {
		return []*types.PersonalizedAssessment{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *personalizedAssessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) (*types.PersonalizedAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.PersonalizedAssessment
	if err := transaction.WithContext(ctx).
		Preload("User").
		Preload("AssessmentModel").
		Where("id = ?", reportID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *personalizedAssessmentRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.PersonalizedAssessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.PersonalizedAssessment
	if err := transaction.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *personalizedAssessmentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, reportID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.PersonalizedAssessment{}).
		Where("id = ?", reportID).
		Updates(fields).Error
}
