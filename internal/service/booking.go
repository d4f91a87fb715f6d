package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	notifier    ports.StudioNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.StudioNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book admits a booking request. The requester must already be registered;
// the repository runs the existence, capacity and duplicate checks as one
// transactional unit. The client_name on the request is accepted for wire
// compatibility, the registered display name wins.
func (s *BookingService) Book(ctx context.Context, input domain.BookInput) (*domain.Admission, error) {
	email := NormalizeEmail(input.ClientEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: client_email is required", domain.ErrValidation)
	}
	if input.ClassID <= 0 {
		return nil, fmt.Errorf("%w: class_id must be positive", domain.ErrValidation)
	}

	admission, err := s.bookingRepo.Admit(ctx, input.ClassID, email)
	if err != nil {
		return nil, fmt.Errorf("admit booking: %w", err)
	}

	if admission.Status == domain.AdmissionCreated {
		s.logger.Info("booking created",
			logger.Int64("booking_id", admission.Detail.BookingID),
			logger.Int64("class_id", admission.Detail.ClassID),
			logger.String("user_email", admission.Detail.UserEmail),
		)

		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), &admission.Detail)
	}

	return admission, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID int64, email string) (*domain.BookingDetail, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: client_email is required", domain.ErrValidation)
	}

	detail, err := s.bookingRepo.Cancel(ctx, bookingID, email)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", detail.BookingID),
		logger.Int64("class_id", detail.ClassID),
		logger.String("user_email", detail.UserEmail),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), detail)

	return detail, nil
}

// ListByEmail returns the booking history for a registered user. An unknown
// email is an error; a known user with no bookings gets an empty list.
func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]*domain.BookingDetail, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotRegistered
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	details, err := s.bookingRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return details, nil
}

// NormalizeEmail makes email the identity key: lowercased, no surrounding
// whitespace. Lookups and inserts both go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
