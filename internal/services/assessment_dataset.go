package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type AssessmentDatasetService interface {
	Create(ctx context.Context, dataset *types.AssessmentDataset) (*types.AssessmentDataset, error)
	List(ctx context.Context) ([]*types.AssessmentDataset, error)
	// Delete refuses to remove a dataset that is still referenced by an
	// assessment model.
	Delete(ctx context.Context, datasetID uuid.UUID) error
}

type assessmentDatasetService struct {
	db       *gorm.DB
	log      *logger.Logger
	datasets repos.AssessmentDatasetRepo
	models   repos.AssessmentModelRepo
}

func NewAssessmentDatasetService(db *gorm.DB, baseLog *logger.Logger, datasets repos.AssessmentDatasetRepo, models repos.AssessmentModelRepo) AssessmentDatasetService {
	return &assessmentDatasetService{
		db:       db,
		log:      baseLog.With("service", "AssessmentDatasetService"),
		datasets: datasets,
		models:   models,
	}
}

func (s *assessmentDatasetService) Create(ctx context.Context, dataset *types.AssessmentDataset) (*types.AssessmentDataset, error) {
	if dataset.ID == uuid.Nil {
		dataset.ID = uuid.New()
	}
	if dataset.DatasetName == "" {
		return nil, fmt.Errorf("%w: missing dataset_name", apperrors.ErrInvalidRequest)
	}
	created, err := s.datasets.Create(ctx, nil, []*types.AssessmentDataset{dataset})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *assessmentDatasetService) List(ctx context.Context) ([]*types.AssessmentDataset, error) {
	return s.datasets.List(ctx, nil)
}

func (s *assessmentDatasetService) Delete(ctx context.Context, datasetID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.datasets.GetByID(ctx, tx, datasetID); err != nil {
			return err
		}
		count, err := s.models.CountByDataset(ctx, tx, datasetID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: dataset is referenced by %d assessment model(s)", apperrors.ErrInvalidState, count)
		}
		return s.datasets.Delete(ctx, tx, datasetID)
	})
}
