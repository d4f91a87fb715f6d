package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/service/ports"
)

type ClassService struct {
	repo           ports.ClassRepo
	notifier       ports.StudioNotifier
	reminderWindow time.Duration
	logger         logger.Logger
}

func NewClassService(
	repo ports.ClassRepo,
	notifier ports.StudioNotifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *ClassService {
	return &ClassService{
		repo:           repo,
		notifier:       notifier,
		reminderWindow: reminderWindow,
		logger:         logger,
	}
}

func (s *ClassService) Create(ctx context.Context, input domain.CreateClassInput) (*domain.Class, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Instructor == "" {
		return nil, fmt.Errorf("%w: instructor is required", domain.ErrValidation)
	}
	if input.TotalSlots <= 0 {
		return nil, fmt.Errorf("%w: total_slots must be positive", domain.ErrValidation)
	}
	if input.StartTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}

	class := &domain.Class{
		Name:           input.Name,
		StartTime:      input.StartTime.UTC(),
		Instructor:     input.Instructor,
		TotalSlots:     input.TotalSlots,
		AvailableSlots: input.TotalSlots,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	return class, nil
}

// ListUpcoming returns upcoming classes with start times converted to the
// requested IANA timezone for display. Times are stored in UTC.
func (s *ClassService) ListUpcoming(ctx context.Context, tz string) ([]*domain.Class, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, tz)
	}

	classes, err := s.repo.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	for _, c := range classes {
		c.StartTime = c.StartTime.In(loc)
	}

	return classes, nil
}

// SendReminders pushes a roster summary for classes starting within the
// reminder window. Driven by the scheduler.
func (s *ClassService) SendReminders(ctx context.Context) ([]*domain.ClassReminder, error) {
	due, err := s.repo.DueForReminder(ctx, s.reminderWindow)
	if err != nil {
		return nil, fmt.Errorf("due for reminder: %w", err)
	}

	for _, rem := range due {
		s.logger.Info("class reminder",
			logger.Int64("class_id", rem.Class.ID),
			logger.String("class", rem.Class.Name),
			logger.Int("booked", rem.Booked),
		)
		s.notifier.NotifyClassReminder(ctx, rem)
	}

	return due, nil
}
