package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type ChatRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.ChatRecord) ([]*types.ChatRecord, error)
	ListBySession(ctx context.Context, tx *gorm.DB, sessionID string) ([]*types.ChatRecord, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.ChatRecord, error)
}

type chatRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatRecordRepo(db *gorm.DB, baseLog *logger.Logger) ChatRecordRepo {
	return &chatRecordRepo{db: db, log: baseLog.With("repo", "ChatRecordRepo")}
}

func (r *chatRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.ChatRecord) ([]*types.ChatRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return []*types.ChatRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *chatRecordRepo) ListBySession(ctx context.Context, tx *gorm.DB, sessionID string) ([]*types.ChatRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ChatRecord
	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *chatRecordRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ChatRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.ChatRecord
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
