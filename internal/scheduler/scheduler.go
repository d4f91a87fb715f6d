package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type classReminder interface {
	SendReminders(ctx context.Context) ([]*domain.ClassReminder, error)
}

type Scheduler struct {
	classService classReminder
	interval     time.Duration
	logger       logger.Logger
}

func New(
	classService classReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		classService: classService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.classService.SendReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send class reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, rem := range reminded {
		s.logger.Info("reminder sent",
			logger.Int64("class_id", rem.Class.ID),
			logger.String("class", rem.Class.Name),
			logger.Int("booked", rem.Booked),
		)
	}
}
