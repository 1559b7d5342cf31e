package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/lifecycle"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type ArtJobService interface {
	Create(ctx context.Context, job *types.ArtGenerationJob) (*types.ArtGenerationJob, error)
	Get(ctx context.Context, jobID uuid.UUID) (*types.ArtGenerationJob, error)
	List(ctx context.Context) ([]*types.ArtGenerationJob, error)
	// TriggerGeneration runs the generation state machine for one job:
	// claim running, produce the artifact, complete. A job already running
	// fails with ErrInvalidState; completed and failed jobs may be re-run.
	TriggerGeneration(ctx context.Context, jobID uuid.UUID) (*types.ArtGenerationJob, error)
}

type artJobService struct {
	db        *gorm.DB
	log       *logger.Logger
	jobs      repos.ArtGenerationJobRepo
	therapies repos.PaintingTherapyRepo
}

func NewArtJobService(db *gorm.DB, baseLog *logger.Logger, jobs repos.ArtGenerationJobRepo, therapies repos.PaintingTherapyRepo) ArtJobService {
	return &artJobService{
		db:        db,
		log:       baseLog.With("service", "ArtJobService"),
		jobs:      jobs,
		therapies: therapies,
	}
}

func (s *artJobService) Create(ctx context.Context, job *types.ArtGenerationJob) (*types.ArtGenerationJob, error) {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if strings.TrimSpace(job.Prompt) == "" {
		return nil, fmt.Errorf("%w: missing prompt", apperrors.ErrInvalidRequest)
	}
	if _, err := s.therapies.GetByID(ctx, nil, job.TherapyID); err != nil {
		return nil, err
	}
	if job.Status == 0 {
		job.Status = types.JobPending
	}
	if job.GuidanceScale == 0 {
		job.GuidanceScale = 7.5
	}
	created, err := s.jobs.Create(ctx, nil, []*types.ArtGenerationJob{job})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *artJobService) Get(ctx context.Context, jobID uuid.UUID) (*types.ArtGenerationJob, error) {
	return s.jobs.GetByID(ctx, nil, jobID)
}

func (s *artJobService) List(ctx context.Context) ([]*types.ArtGenerationJob, error) {
	return s.jobs.List(ctx, nil)
}

func (s *artJobService) TriggerGeneration(ctx context.Context, jobID uuid.UUID) (*types.ArtGenerationJob, error) {
	job, err := s.jobs.GetByID(ctx, nil, jobID)
	if err != nil {
		return nil, err
	}
	therapy := job.Therapy
	if therapy == nil {
		therapy, err = s.therapies.GetByID(ctx, nil, job.TherapyID)
		if err != nil {
			return nil, err
		}
	}

	claim := func(ctx context.Context) (bool, error) {
		return s.jobs.ClaimRunning(ctx, nil, jobID)
	}
	work := func(ctx context.Context) error {
		metadata, err := json.Marshal(map[string]interface{}{
			"engine":         therapy.APIEndpoint,
			"style":          job.Style,
			"guidance_scale": job.GuidanceScale,
		})
		if err != nil {
			return err
		}
		outputURL := fmt.Sprintf("/media/generated/%s_%s.png", job.ID, promptSlug(job.Prompt))
		s.log.Info("Generation completed", "job_id", jobID, "output_url", outputURL)
		return s.jobs.UpdateFields(ctx, nil, jobID, map[string]interface{}{
			"output_url": outputURL,
			"metadata":   datatypes.JSON(metadata),
			"status":     types.JobCompleted,
		})
	}
	if err := lifecycle.Run(ctx, claim, work); err != nil {
		return nil, err
	}
	return s.jobs.GetByID(ctx, nil, jobID)
}

// promptSlug keeps the first 20 characters of the prompt with spaces folded
// to underscores, so the artifact name stays readable.
func promptSlug(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return strings.ReplaceAll(string(runes), " ", "_")
}
