package ports

import (
	"context"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
