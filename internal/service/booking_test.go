package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockUserRepo, *mocks.MockStudioNotifier, *BookingService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockStudioNotifier(t)
	svc := NewBookingService(bookingRepo, userRepo, notifier, newTestLogger(t))
	return bookingRepo, userRepo, notifier, svc
}

func TestBookingService_Book_Created(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	admission := &domain.Admission{
		Status: domain.AdmissionCreated,
		Detail: domain.BookingDetail{
			BookingID: 101,
			ClassID:   1,
			ClassName: "Morning Yoga",
			UserEmail: "john.doe@example.com",
			BookedAt:  time.Now().UTC(),
		},
	}

	bookingRepo.EXPECT().Admit(mock.Anything, int64(1), "john.doe@example.com").Return(admission, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, &admission.Detail).Return()

	got, err := svc.Book(context.Background(), domain.BookInput{
		ClassID:     1,
		ClientName:  "John Doe",
		ClientEmail: "John.Doe@Example.com ",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AdmissionCreated, got.Status)
	assert.Equal(t, int64(101), got.Detail.BookingID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	admission := &domain.Admission{
		Status: domain.AdmissionAlreadyBooked,
		Detail: domain.BookingDetail{BookingID: 101, ClassID: 1},
	}

	bookingRepo.EXPECT().Admit(mock.Anything, int64(1), "a@b.com").Return(admission, nil)

	got, err := svc.Book(context.Background(), domain.BookInput{ClassID: 1, ClientEmail: "a@b.com"})

	// No notification and no state change for a repeat booking.
	require.NoError(t, err)
	assert.Equal(t, domain.AdmissionAlreadyBooked, got.Status)
}

func TestBookingService_Book_ClassNotFound(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().Admit(mock.Anything, int64(99), "a@b.com").Return(nil, domain.ErrClassNotFound)

	_, err := svc.Book(context.Background(), domain.BookInput{ClassID: 99, ClientEmail: "a@b.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestBookingService_Book_NoSlots(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().Admit(mock.Anything, int64(1), "a@b.com").Return(nil, domain.ErrNoSlotsAvailable)

	_, err := svc.Book(context.Background(), domain.BookInput{ClassID: 1, ClientEmail: "a@b.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSlotsAvailable)
}

func TestBookingService_Book_UserNotRegistered(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().Admit(mock.Anything, int64(1), "ghost@example.com").Return(nil, domain.ErrUserNotRegistered)

	_, err := svc.Book(context.Background(), domain.BookInput{ClassID: 1, ClientEmail: "ghost@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
}

func TestBookingService_Book_Validation(t *testing.T) {
	_, _, _, svc := newBookingService(t)

	_, err := svc.Book(context.Background(), domain.BookInput{ClassID: 1, ClientEmail: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Book(context.Background(), domain.BookInput{ClassID: 0, ClientEmail: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel(t *testing.T) {
	bookingRepo, _, notifier, svc := newBookingService(t)

	detail := &domain.BookingDetail{BookingID: 101, ClassID: 1, UserEmail: "a@b.com"}
	bookingRepo.EXPECT().Cancel(mock.Anything, int64(101), "a@b.com").Return(detail, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, detail).Return()

	got, err := svc.Cancel(context.Background(), 101, "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, int64(101), got.BookingID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().Cancel(mock.Anything, int64(7), "a@b.com").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), 7, "a@b.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByEmail(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	user := &domain.User{ID: 42, Name: "John Doe", Email: "john.doe@example.com"}
	details := []*domain.BookingDetail{
		{BookingID: 101, ClassID: 1, ClassName: "Morning Yoga", UserID: 42},
	}

	userRepo.EXPECT().GetByEmail(mock.Anything, "john.doe@example.com").Return(user, nil)
	bookingRepo.EXPECT().ListByUser(mock.Anything, int64(42)).Return(details, nil)

	got, err := svc.ListByEmail(context.Background(), "John.Doe@example.com")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(101), got[0].BookingID)
}

func TestBookingService_ListByEmail_Empty(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	user := &domain.User{ID: 42, Email: "john.doe@example.com"}

	userRepo.EXPECT().GetByEmail(mock.Anything, "john.doe@example.com").Return(user, nil)
	bookingRepo.EXPECT().ListByUser(mock.Anything, int64(42)).Return(nil, nil)

	got, err := svc.ListByEmail(context.Background(), "john.doe@example.com")

	// A registered user with no bookings is a normal state, not an error.
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookingService_ListByEmail_Unregistered(t *testing.T) {
	_, userRepo, _, svc := newBookingService(t)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByEmail(context.Background(), "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
}
