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

type KnowledgeBaseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, bases []*types.KnowledgeBase) ([]*types.KnowledgeBase, error)
	GetByID(ctx context.Context, tx *gorm.DB, kbID uuid.UUID) (*types.KnowledgeBase, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.KnowledgeBase, error)
	// SyncDocCount recounts the base's documents and stores the result.
	SyncDocCount(ctx context.Context, tx *gorm.DB, kbID uuid.UUID) (int, error)
}

type knowledgeBaseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKnowledgeBaseRepo(db *gorm.DB, baseLog *logger.Logger) KnowledgeBaseRepo {
	return &knowledgeBaseRepo{db: db, log: baseLog.With("repo", "KnowledgeBaseRepo")}
}

func (r *knowledgeBaseRepo) Create(ctx context.Context, tx *gorm.DB, bases []*types.KnowledgeBase) ([]*types.KnowledgeBase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(bases) == 0 {
		return []*types.KnowledgeBase{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&bases).Error; err != nil {
		return nil, err
	}
	return bases, nil
}

func (r *knowledgeBaseRepo) GetByID(ctx context.Context, tx *gorm.DB, kbID uuid.UUID) (*types.KnowledgeBase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.KnowledgeBase
	if err := transaction.WithContext(ctx).
		Where("id = ?", kbID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *knowledgeBaseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.KnowledgeBase, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.KnowledgeBase
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *knowledgeBaseRepo) SyncDocCount(ctx context.Context, tx *gorm.DB, kbID uuid.UUID) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.KnowledgeDoc{}).
		Where("kb_id = ?", kbID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if err := transaction.WithContext(ctx).
		Model(&types.KnowledgeBase{}).
		Where("id = ?", kbID).
		Update("doc_count", count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

type KnowledgeDocRepo interface {
	Create(ctx context.Context, tx *gorm.DB, docs []*types.KnowledgeDoc) ([]*types.KnowledgeDoc, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.KnowledgeDoc, error)
}

type knowledgeDocRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKnowledgeDocRepo(db *gorm.DB, baseLog *logger.Logger) KnowledgeDocRepo {
	return &knowledgeDocRepo{db: db, log: baseLog.With("repo", "KnowledgeDocRepo")}
}

func (r *knowledgeDocRepo) Create(ctx context.Context, tx *gorm.DB, docs []*types.KnowledgeDoc) ([]*types.KnowledgeDoc, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(docs) == 0 {
		return []*types.KnowledgeDoc{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *knowledgeDocRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.KnowledgeDoc, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.KnowledgeDoc
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
