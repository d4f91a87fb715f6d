package ports

import (
	"context"
	"time"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type ClassRepo interface {
	Create(ctx context.Context, c *domain.Class) error
	ListUpcoming(ctx context.Context) ([]*domain.Class, error)
	DueForReminder(ctx context.Context, window time.Duration) ([]*domain.ClassReminder, error)
}
