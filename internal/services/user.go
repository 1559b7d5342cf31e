package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindbridge/assessment-backend/internal/logger"
	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
	"github.com/mindbridge/assessment-backend/internal/repos"
	"github.com/mindbridge/assessment-backend/internal/types"
)

type UserService interface {
	Create(ctx context.Context, user *types.User) (*types.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*types.User, error)
}

type userService struct {
	db    *gorm.DB
	log   *logger.Logger
	users repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, users repos.UserRepo) UserService {
	return &userService{
		db:    db,
		log:   baseLog.With("service", "UserService"),
		users: users,
	}
}

func (s *userService) Create(ctx context.Context, user *types.User) (*types.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Username == "" {
		return nil, fmt.Errorf("%w: missing username", apperrors.ErrInvalidRequest)
	}
	created, err := s.users.Create(ctx, nil, []*types.User{user})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *userService) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	return s.users.GetByID(ctx, nil, userID)
}
