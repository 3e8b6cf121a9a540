package usecase

import (
	"context"
	"fmt"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"
	"rail-booking/internal/dto/response"
	"rail-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repos  *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repos *repository.Repository, config *utils.Config, log *zap.Logger) *AuthService {
	return &AuthService{
		repos:  repos,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *AuthService) Register(ctx context.Context, req request.RegisterRequest) (*response.UserResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	existing, err := s.repos.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.repos.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: utils.GenerateUUID(), CreatedAt: now, UpdatedAt: now},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	if req.FirstName != "" {
		user.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		user.LastName = &req.LastName
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()))
	return response.NewUserResponse(user), nil
}

func (s *AuthService) Login(ctx context.Context, req request.LoginRequest, userAgent, ipAddress string) (*response.LoginResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	user, err := s.repos.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: utils.GenerateUUID(), CreatedAt: now},
		UserID:     user.ID,
		Token:      utils.GenerateSessionToken(),
		ExpiresAt:  now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}
	if ipAddress != "" {
		session.IPAddress = &ipAddress
	}

	if err := s.repos.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return response.NewLoginResponse(session, user), nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.repos.Session.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Info("Session revoked")
	return nil
}
