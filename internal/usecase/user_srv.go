package usecase

import (
	"context"

	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	repos *repository.Repository
	log   *zap.Logger
}

func NewUserService(repos *repository.Repository, log *zap.Logger) *UserService {
	return &UserService{
		repos: repos,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repos.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return response.NewUserResponse(user), nil
}

func (s *UserService) ListUsers(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[*response.UserResponse], error) {
	users, err := s.repos.User.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repos.User.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*response.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, response.NewUserResponse(u))
	}

	return response.NewPaginatedResponse(items, p.Page, p.Limit(), total), nil
}
