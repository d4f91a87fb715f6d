package ports

import (
	"context"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type BookingRepo interface {
	Admit(ctx context.Context, classID int64, email string) (*domain.Admission, error)
	Cancel(ctx context.Context, bookingID int64, email string) (*domain.BookingDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.BookingDetail, error)
}
