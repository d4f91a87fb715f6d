package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harishnemade100/fitness-studio-booking/internal/auth"
	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/service/ports"
)

type AuthConfig struct {
	Secret     string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

type UserService struct {
	repo ports.UserRepo
	cfg  AuthConfig
}

func NewUserService(repo ports.UserRepo, cfg AuthConfig) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	email := NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := auth.NewAccessToken(s.cfg.Secret, s.cfg.Issuer, s.cfg.TokenTTL, auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
	})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
