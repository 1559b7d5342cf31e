package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/clients/dify"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

// fakeDify records calls instead of contacting a runner.
type fakeDify struct {
	runCalls  int
	lastKind  dify.WorkflowKind
	lastFiles []dify.FileInput
	lastUser  string
}

func (f *fakeDify) Run(ctx context.Context, kind dify.WorkflowKind, files []dify.FileInput, inputs map[string]any, user string) (*dify.RunResult, error) {
	f.runCalls++
	f.lastKind = kind
	f.lastFiles = files
	f.lastUser = user
	return &dify.RunResult{TaskID: "task-1", Result: map[string]any{"ok": true}}, nil
}

func (f *fakeDify) GetStatus(ctx context.Context, kind dify.WorkflowKind, taskID string) (*dify.TaskStatus, error) {
	return &dify.TaskStatus{TaskID: taskID, Status: "succeeded"}, nil
}

func seedUpload(t *testing.T, db *gorm.DB, completed bool, fileURL string) *types.UploadFile {
	t.Helper()
	file := &types.UploadFile{
		ID:       uuid.New(),
		Filename: "scan.png",
		Filepath: "uploads/scan.png",
		FileURL:  fileURL,
		FileType: "image",
		Filesize: 2048,
		IsUpload: completed,
	}
	if err := db.Create(file).Error; err != nil {
		t.Fatalf("seed upload: %v", err)
	}
	return file
}

func TestWorkflowRun(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	t.Run("empty file list fails before upstream contact", func(t *testing.T) {
		db := newTestDB(t)
		gateway := &fakeDify{}
		svc := NewWorkflowService(db, log, repos.NewUploadFileRepo(db, log), gateway, "https://media.example.com")

		_, err := svc.Run(ctx, dify.KindDiagnostic, "u1", nil, nil)
		if !errors.Is(err, apperrors.ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
		if gateway.runCalls != 0 {
			t.Fatalf("gateway contacted %d time(s) on invalid request", gateway.runCalls)
		}
	})

	t.Run("no resolvable files fails before upstream contact", func(t *testing.T) {
		db := newTestDB(t)
		gateway := &fakeDify{}
		svc := NewWorkflowService(db, log, repos.NewUploadFileRepo(db, log), gateway, "https://media.example.com")

		incomplete := seedUpload(t, db, false, "")
		_, err := svc.Run(ctx, dify.KindDiagnostic, "u1", []uuid.UUID{incomplete.ID, uuid.New()}, nil)
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
		if gateway.runCalls != 0 {
			t.Fatalf("gateway contacted %d time(s) with nothing to send", gateway.runCalls)
		}
	})

	t.Run("partial resolution proceeds with what resolved", func(t *testing.T) {
		db := newTestDB(t)
		gateway := &fakeDify{}
		svc := NewWorkflowService(db, log, repos.NewUploadFileRepo(db, log), gateway, "https://media.example.com")

		good := seedUpload(t, db, true, "https://cdn.example.com/scan.png")
		result, err := svc.Run(ctx, dify.KindArtTherapy, "u1", []uuid.UUID{good.ID, uuid.New()}, map[string]any{"note": "x"})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if result.TaskID != "task-1" {
			t.Errorf("task id = %q", result.TaskID)
		}
		if gateway.runCalls != 1 {
			t.Fatalf("gateway called %d time(s), want 1", gateway.runCalls)
		}
		if gateway.lastKind != dify.KindArtTherapy {
			t.Errorf("kind = %v", gateway.lastKind)
		}
		if len(gateway.lastFiles) != 1 {
			t.Fatalf("manifest has %d entries, want 1", len(gateway.lastFiles))
		}
		if gateway.lastFiles[0].URL != "https://cdn.example.com/scan.png" {
			t.Errorf("manifest url = %q, want the stored public url", gateway.lastFiles[0].URL)
		}
		if gateway.lastFiles[0].ID != good.ID.String() {
			t.Errorf("manifest id = %q", gateway.lastFiles[0].ID)
		}
	})

	t.Run("relative paths get the media base prepended", func(t *testing.T) {
		db := newTestDB(t)
		gateway := &fakeDify{}
		svc := NewWorkflowService(db, log, repos.NewUploadFileRepo(db, log), gateway, "https://media.example.com/")

		local := seedUpload(t, db, true, "")
		if _, err := svc.Run(ctx, dify.KindDiagnostic, "u1", []uuid.UUID{local.ID}, nil); err != nil {
			t.Fatalf("Run: %v", err)
		}
		want := "https://media.example.com/uploads/scan.png"
		if gateway.lastFiles[0].URL != want {
			t.Errorf("manifest url = %q, want %q", gateway.lastFiles[0].URL, want)
		}
	})
}

func TestChatSendQuestion(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger()

	t.Run("persists with a placeholder answer", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewChatService(db, log, repos.NewChatRecordRepo(db, log), repos.NewUserRepo(db, log))
		user := seedUser(t, db)

		record, err := svc.SendQuestion(ctx, user.ID, "s1", "How do I handle exam stress?")
		if err != nil {
			t.Fatalf("SendQuestion: %v", err)
		}
		if record.Answer == "" {
			t.Error("answer placeholder missing")
		}
		if record.SessionID != "s1" {
			t.Errorf("session id = %q", record.SessionID)
		}

		records, err := svc.ListBySession(ctx, "s1")
		if err != nil {
			t.Fatalf("ListBySession: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
	})

	t.Run("blank question rejected", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewChatService(db, log, repos.NewChatRecordRepo(db, log), repos.NewUserRepo(db, log))
		user := seedUser(t, db)

		_, err := svc.SendQuestion(ctx, user.ID, "s1", "  ")
		if !errors.Is(err, apperrors.ErrInvalidRequest) {
			t.Fatalf("err = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewChatService(db, log, repos.NewChatRecordRepo(db, log), repos.NewUserRepo(db, log))

		_, err := svc.SendQuestion(ctx, uuid.New(), "s1", "hello")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}
