package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type UploadFileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, files []*types.UploadFile) ([]*types.UploadFile, error)
	// GetCompletedByIDs returns only fully-uploaded files; ids that do not
	// resolve are silently dropped from the result.
	GetCompletedByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) ([]*types.UploadFile, error)
}

type uploadFileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUploadFileRepo(db *gorm.DB, baseLog *logger.Logger) UploadFileRepo {
	return &uploadFileRepo{db: db, log: baseLog.With("repo", "UploadFileRepo")}
}

func (r *uploadFileRepo) Create(ctx context.Context, tx *gorm.DB, files []*types.UploadFile) ([]*types.UploadFile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(files) == 0 {
		return []*types.UploadFile{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *uploadFileRepo) GetCompletedByIDs(ctx context.Context, tx *gorm.DB, fileIDs []uuid.UUID) ([]*types.UploadFile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.UploadFile
	if len(fileIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ? AND is_upload = ?", fileIDs, true).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
