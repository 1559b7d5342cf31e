package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/plangen"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type AssessmentReportService interface {
	// GenerateReport creates a report for the user and derives its plan from
	// the given biosignal snapshot. The user must exist; a model reference is
	// optional and silently dropped when it does not resolve.
	GenerateReport(ctx context.Context, userID uuid.UUID, modelID *uuid.UUID, signals map[string]float64) (*types.PersonalizedAssessment, error)
	// RefreshPlan re-derives the plan fields. With no new signals the stored
	// snapshot is reused, which makes the refresh a no-op on content.
	RefreshPlan(ctx context.Context, reportID uuid.UUID, signals map[string]float64) (*types.PersonalizedAssessment, error)
	Get(ctx context.Context, reportID uuid.UUID) (*types.PersonalizedAssessment, error)
	List(ctx context.Context) ([]*types.PersonalizedAssessment, error)
}

type assessmentReportService struct {
	db      *gorm.DB
	log     *logger.Logger
	reports repos.PersonalizedAssessmentRepo
	users   repos.UserRepo
	models  repos.AssessmentModelRepo
}

func NewAssessmentReportService(db *gorm.DB, baseLog *logger.Logger, reports repos.PersonalizedAssessmentRepo, users repos.UserRepo, models repos.AssessmentModelRepo) AssessmentReportService {
	return &assessmentReportService{
		db:      db,
		log:     baseLog.With("service", "AssessmentReportService"),
		reports: reports,
		users:   users,
		models:  models,
	}
}

func (s *assessmentReportService) GenerateReport(ctx context.Context, userID uuid.UUID, modelID *uuid.UUID, signals map[string]float64) (*types.PersonalizedAssessment, error) {
	if _, err := s.users.GetByID(ctx, nil, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, err
	}
	var modelRef *uuid.UUID
	if modelID != nil {
		if _, err := s.models.GetByID(ctx, nil, *modelID); err == nil {
			modelRef = modelID
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	if signals == nil {
		signals = map[string]float64{}
	}
	snapshot, err := json.Marshal(signals)
	if err != nil {
		return nil, err
	}
	report := &types.PersonalizedAssessment{
		ID:                uuid.New(),
		UserID:            userID,
		AssessmentModelID: modelRef,
		Status:            types.ReportDraft,
		StressLevel:       types.StressMedium,
		SignalSnapshot:    datatypes.JSON(snapshot),
	}
	if _, err := s.reports.Create(ctx, nil, []*types.PersonalizedAssessment{report}); err != nil {
		return nil, err
	}

	if err := s.applyPlan(ctx, report.ID, signals); err != nil {
		return nil, err
	}
	s.log.Info("Report generated", "report_id", report.ID, "user_id", userID)
	return s.reports.GetByID(ctx, nil, report.ID)
}

func (s *assessmentReportService) RefreshPlan(ctx context.Context, reportID uuid.UUID, signals map[string]float64) (*types.PersonalizedAssessment, error) {
	report, err := s.reports.GetByID(ctx, nil, reportID)
	if err != nil {
		return nil, err
	}
	if len(signals) == 0 {
		signals = map[string]float64{}
		if len(report.SignalSnapshot) > 0 {
			if err := json.Unmarshal(report.SignalSnapshot, &signals); err != nil {
				return nil, fmt.Errorf("stored snapshot unreadable: %w", err)
			}
		}
	}
	if err := s.applyPlan(ctx, reportID, signals); err != nil {
		return nil, err
	}
	return s.reports.GetByID(ctx, nil, reportID)
}

func (s *assessmentReportService) Get(ctx context.Context, reportID uuid.UUID) (*types.PersonalizedAssessment, error) {
	return s.reports.GetByID(ctx, nil, reportID)
}

func (s *assessmentReportService) List(ctx context.Context) ([]*types.PersonalizedAssessment, error) {
	return s.reports.List(ctx, nil)
}

// applyPlan writes every derived field plus the snapshot the plan came from
// in one update, so a reader never sees a half-refreshed report.
func (s *assessmentReportService) applyPlan(ctx context.Context, reportID uuid.UUID, signals map[string]float64) error {
	plan := plangen.Generate(signals)

	profile, err := json.Marshal(plan.PersonalityProfile)
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(plan.Recommendations)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.reports.UpdateFields(ctx, nil, reportID, map[string]interface{}{
		"emotion_score":       plan.EmotionScore,
		"stress_level":        plan.StressLevel,
		"personality_profile": datatypes.JSON(profile),
		"summary":             plan.Summary,
		"recommendations":     datatypes.JSON(recommendations),
		"intervention_plan":   plan.InterventionPlan,
		"signal_snapshot":     datatypes.JSON(snapshot),
		"status":              types.ReportGenerated,
	})
}
