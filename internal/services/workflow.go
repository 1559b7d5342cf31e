package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/clients/dify"
	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
)

type WorkflowService interface {
	// Run resolves the requested file ids to stored files, builds the
	// manifest and delegates to the gateway. Requests with no file ids fail
	// before any upstream contact; requests where no id resolves fail with
	// ErrNotFound. A partially resolved list proceeds with what resolved.
	Run(ctx context.Context, kind dify.WorkflowKind, userID string, fileIDs []uuid.UUID, inputs map[string]any) (*dify.RunResult, error)
	GetStatus(ctx context.Context, kind dify.WorkflowKind, taskID string) (*dify.TaskStatus, error)
}

type workflowService struct {
	db           *gorm.DB
	log          *logger.Logger
	files        repos.UploadFileRepo
	gateway      dify.Client
	mediaBaseURL string
}

func NewWorkflowService(db *gorm.DB, baseLog *logger.Logger, files repos.UploadFileRepo, gateway dify.Client, mediaBaseURL string) WorkflowService {
	return &workflowService{
		db:           db,
		log:          baseLog.With("service", "WorkflowService"),
		files:        files,
		gateway:      gateway,
		mediaBaseURL: strings.TrimRight(mediaBaseURL, "/"),
	}
}

func (s *workflowService) Run(ctx context.Context, kind dify.WorkflowKind, userID string, fileIDs []uuid.UUID, inputs map[string]any) (*dify.RunResult, error) {
	if len(fileIDs) == 0 {
		return nil, fmt.Errorf("%w: file_ids must not be empty", apperrors.ErrInvalidRequest)
	}
	files, err := s.files.GetCompletedByIDs(ctx, nil, fileIDs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: none of the %d file id(s) resolved to an uploaded file", apperrors.ErrNotFound, len(fileIDs))
	}
	if len(files) < len(fileIDs) {
		s.log.Warn("Some file ids did not resolve", "requested", len(fileIDs), "resolved", len(files))
	}

	manifest := make([]dify.FileInput, 0, len(files))
	for _, f := range files {
		fileType := f.FileType
		if fileType == "" {
			fileType = "other"
		}
		manifest = append(manifest, dify.FileInput{
			URL:      s.absoluteURL(f.FileURL, f.Filepath),
			Filename: f.Filename,
			Type:     fileType,
			Size:     f.Filesize,
			ID:       f.ID.String(),
		})
	}
	return s.gateway.Run(ctx, kind, manifest, inputs, userID)
}

func (s *workflowService) GetStatus(ctx context.Context, kind dify.WorkflowKind, taskID string) (*dify.TaskStatus, error) {
	return s.gateway.GetStatus(ctx, kind, taskID)
}

// absoluteURL prefers the stored public URL; files that only carry a relative
// path get the media base prepended so the runner can fetch them.
func (s *workflowService) absoluteURL(fileURL, filepath string) string {
	if fileURL != "" {
		return fileURL
	}
	return s.mediaBaseURL + "/" + strings.TrimLeft(filepath, "/")
}
