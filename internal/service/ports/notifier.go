package ports

import (
	"context"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type StudioNotifier interface {
	NotifyBookingCreated(ctx context.Context, detail *domain.BookingDetail)
	NotifyBookingCancelled(ctx context.Context, detail *domain.BookingDetail)
	NotifyClassReminder(ctx context.Context, reminder *domain.ClassReminder)
}
