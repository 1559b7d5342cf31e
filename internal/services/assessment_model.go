package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/fusion"
	"github.com/mindbridge/assessment-backend/internal/lifecycle"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type AssessmentModelService interface {
	Create(ctx context.Context, model *types.AssessmentModel) (*types.AssessmentModel, error)
	Get(ctx context.Context, modelID uuid.UUID) (*types.AssessmentModel, error)
	List(ctx context.Context) ([]*types.AssessmentModel, error)
	// Train runs the training state machine: claim the training state,
	// compute metrics, complete. Fails with ErrInvalidState when a run is
	// already in flight; retry from failed is allowed.
	Train(ctx context.Context, modelID uuid.UUID) (*types.AssessmentModel, error)
}

type assessmentModelService struct {
	db     *gorm.DB
	log    *logger.Logger
	models repos.AssessmentModelRepo
}

func NewAssessmentModelService(db *gorm.DB, baseLog *logger.Logger, models repos.AssessmentModelRepo) AssessmentModelService {
	return &assessmentModelService{
		db:     db,
		log:    baseLog.With("service", "AssessmentModelService"),
		models: models,
	}
}

func (s *assessmentModelService) Create(ctx context.Context, model *types.AssessmentModel) (*types.AssessmentModel, error) {
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if model.TrainingStatus == 0 {
		model.TrainingStatus = types.TrainingPending
	}
	created, err := s.models.Create(ctx, nil, []*types.AssessmentModel{model})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *assessmentModelService) Get(ctx context.Context, modelID uuid.UUID) (*types.AssessmentModel, error) {
	return s.models.GetByID(ctx, nil, modelID)
}

func (s *assessmentModelService) List(ctx context.Context) ([]*types.AssessmentModel, error) {
	return s.models.List(ctx, nil)
}

func (s *assessmentModelService) Train(ctx context.Context, modelID uuid.UUID) (*types.AssessmentModel, error) {
	model, err := s.models.GetByID(ctx, nil, modelID)
	if err != nil {
		return nil, err
	}

	claim := func(ctx context.Context) (bool, error) {
		return s.models.ClaimTraining(ctx, nil, modelID)
	}
	work := func(ctx context.Context) error {
		emotion, personality, stress := trainingMetrics(model)
		now := time.Now().UTC()
		s.log.Info("Training completed", "model_id", modelID, "emotion_metric", emotion)
		return s.models.UpdateFields(ctx, nil, modelID, map[string]interface{}{
			"emotion_metric":     emotion,
			"personality_metric": personality,
			"stress_metric":      stress,
			"training_status":    types.TrainingCompleted,
			"last_trained_time":  now,
		})
	}
	if err := lifecycle.Run(ctx, claim, work); err != nil {
		return nil, err
	}
	return s.models.GetByID(ctx, nil, modelID)
}

// trainingMetrics is the synthetic stand-in for a real training backend: a
// scale derived from dataset size, with a fixed bump for transformer
// backbones. Replace wholesale when real training lands; only the rounding
// and the completed-transition write points are load-bearing.
func trainingMetrics(model *types.AssessmentModel) (emotion, personality, stress float64) {
	sampleCount := 1
	if model.Dataset != nil && model.Dataset.SampleCount > 1 {
		sampleCount = model.Dataset.SampleCount
	}
	scale := math.Min(0.99, 0.65+float64(sampleCount)/20000)
	boost := 0.0
	if strings.Contains(strings.ToLower(model.Backbone), "transformer") {
		boost = 0.02
	}
	return fusion.Round4(scale + boost), fusion.Round4(scale - 0.03), fusion.Round4(scale - 0.05)
}
