package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

func seedJob(t *testing.T, db *gorm.DB, prompt string, status types.JobStatus) *types.ArtGenerationJob {
	t.Helper()
	therapy := &types.PaintingTherapy{
		ID:          uuid.New(),
		TherapyName: "expressive-sketch",
		APIEndpoint: "https://render.example.com/v1",
		APIKey:      "secret",
		IsActive:    true,
	}
	if err := db.Create(therapy).Error; err != nil {
		t.Fatalf("seed therapy: %v", err)
	}
	job := &types.ArtGenerationJob{
		ID:            uuid.New(),
		TherapyID:     therapy.ID,
		Prompt:        prompt,
		Style:         "watercolor",
		GuidanceScale: 7.5,
		Status:        status,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func newArtJobService(t *testing.T, db *gorm.DB) ArtJobService {
	t.Helper()
	log := newTestLogger()
	return NewArtJobService(db, log,
		repos.NewArtGenerationJobRepo(db, log),
		repos.NewPaintingTherapyRepo(db, log),
	)
}

func TestTriggerGeneration(t *testing.T) {
	ctx := context.Background()

	t.Run("completes and records the artifact", func(t *testing.T) {
		db := newTestDB(t)
		svc := newArtJobService(t, db)
		job := seedJob(t, db, "a calm lake under morning fog", types.JobPending)

		done, err := svc.TriggerGeneration(ctx, job.ID)
		if err != nil {
			t.Fatalf("TriggerGeneration: %v", err)
		}
		if done.Status != types.JobCompleted {
			t.Fatalf("status = %v, want completed", done.Status)
		}
		wantPrefix := "/media/generated/" + job.ID.String() + "_a_calm_lake_under_mo"
		if !strings.HasPrefix(done.OutputURL, wantPrefix) {
			t.Errorf("output url = %q, want prefix %q", done.OutputURL, wantPrefix)
		}
		var meta map[string]any
		if err := json.Unmarshal(done.Metadata, &meta); err != nil {
			t.Fatalf("metadata unreadable: %v", err)
		}
		if meta["engine"] != "https://render.example.com/v1" {
			t.Errorf("metadata engine = %v", meta["engine"])
		}
		if meta["style"] != "watercolor" {
			t.Errorf("metadata style = %v", meta["style"])
		}
	})

	t.Run("short prompts are kept whole", func(t *testing.T) {
		db := newTestDB(t)
		svc := newArtJobService(t, db)
		job := seedJob(t, db, "red tree", types.JobPending)

		done, err := svc.TriggerGeneration(ctx, job.ID)
		if err != nil {
			t.Fatalf("TriggerGeneration: %v", err)
		}
		if !strings.HasSuffix(done.OutputURL, "_red_tree.png") {
			t.Errorf("output url = %q, want suffix _red_tree.png", done.OutputURL)
		}
	})

	t.Run("rejects a job already running", func(t *testing.T) {
		db := newTestDB(t)
		svc := newArtJobService(t, db)
		job := seedJob(t, db, "a calm lake", types.JobRunning)

		_, err := svc.TriggerGeneration(ctx, job.ID)
		if !errors.Is(err, apperrors.ErrInvalidState) {
			t.Fatalf("err = %v, want ErrInvalidState", err)
		}
		reloaded, err := svc.Get(ctx, job.ID)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded.OutputURL != "" {
			t.Errorf("output written on rejected trigger: %q", reloaded.OutputURL)
		}
	})

	t.Run("re-runs a completed job", func(t *testing.T) {
		db := newTestDB(t)
		svc := newArtJobService(t, db)
		job := seedJob(t, db, "a calm lake", types.JobCompleted)

		done, err := svc.TriggerGeneration(ctx, job.ID)
		if err != nil {
			t.Fatalf("TriggerGeneration: %v", err)
		}
		if done.Status != types.JobCompleted {
			t.Fatalf("status = %v, want completed", done.Status)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		db := newTestDB(t)
		svc := newArtJobService(t, db)

		_, err := svc.TriggerGeneration(ctx, uuid.New())
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestArtJobCreate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newArtJobService(t, db)

	t.Run("missing prompt", func(t *testing.T) {
		_, err := svc.Create(ctx, &types.ArtGenerationJob{TherapyID: uuid.New(), Prompt: "   "})
		if !errors.Is(err, apperrors.ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("unknown therapy", func(t *testing.T) {
		_, err := svc.Create(ctx, &types.ArtGenerationJob{TherapyID: uuid.New(), Prompt: "a calm lake"})
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
