package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type ChatService interface {
	// SendQuestion persists the question with a placeholder answer. The
	// real answering pipeline is asynchronous and fills the record in later.
	SendQuestion(ctx context.Context, userID uuid.UUID, sessionID, question string) (*types.ChatRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]*types.ChatRecord, error)
}

type chatService struct {
	db      *gorm.DB
	log     *logger.Logger
	records repos.ChatRecordRepo
	users   repos.UserRepo
}

func NewChatService(db *gorm.DB, baseLog *logger.Logger, records repos.ChatRecordRepo, users repos.UserRepo) ChatService {
	return &chatService{
		db:      db,
		log:     baseLog.With("service", "ChatService"),
		records: records,
		users:   users,
	}
}

func (s *chatService) SendQuestion(ctx context.Context, userID uuid.UUID, sessionID, question string) (*types.ChatRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: missing question", apperrors.ErrInvalidRequest)
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	if _, err := s.users.GetByID(ctx, nil, userID); err != nil {
		return nil, err
	}
	record := &types.ChatRecord{
		ID:            uuid.New(),
		UserID:        userID,
		SessionID:     sessionID,
		Question:      question,
		Answer:        fmt.Sprintf("Received question %q; the counseling model is preparing an answer.", question),
		EmotionResult: "neutral(0.92)",
	}
	created, err := s.records.Create(ctx, nil, []*types.ChatRecord{record})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *chatService) ListBySession(ctx context.Context, sessionID string) ([]*types.ChatRecord, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: missing session id", apperrors.ErrInvalidRequest)
	}
	return s.records.ListBySession(ctx, nil, sessionID)
}
