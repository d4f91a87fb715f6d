package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
	"github.com/harishnemade100/fitness-studio-booking/internal/handler/dto"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type ClassSvc interface {
	Create(ctx context.Context, input domain.CreateClassInput) (*domain.Class, error)
	ListUpcoming(ctx context.Context, tz string) ([]*domain.Class, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.BookInput) (*domain.Admission, error)
	Cancel(ctx context.Context, bookingID int64, email string) (*domain.BookingDetail, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.BookingDetail, error)
}

type Handler struct {
	userService    UserSvc
	classService   ClassSvc
	bookingService BookingSvc
	defaultTZ      string
}

func NewHandler(userService UserSvc, classService ClassSvc, bookingService BookingSvc, defaultTZ string) *Handler {
	return &Handler{
		userService:    userService,
		classService:   classService,
		bookingService: bookingService,
		defaultTZ:      defaultTZ,
	}
}

// Users

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, _, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Classes

func (h *Handler) CreateClass(c *ginext.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	class, err := h.classService.Create(c.Request.Context(), domain.CreateClassInput{
		Name:       req.Name,
		StartTime:  startTime,
		Instructor: req.Instructor,
		TotalSlots: req.TotalSlots,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *Handler) ListClasses(c *ginext.Context) {
	tz := c.Query("tz")
	if tz == "" {
		tz = h.defaultTZ
	}

	classes, err := h.classService.ListUpcoming(c.Request.Context(), tz)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClassResponse, 0, len(classes))
	for _, cl := range classes {
		resp = append(resp, dto.ToClassResponse(cl))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookClass(c *ginext.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	admission, err := h.bookingService.Book(c.Request.Context(), domain.BookInput{
		ClassID:     req.ClassID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	// A repeat booking is answered with the existing record, not an error.
	status := http.StatusCreated
	if admission.Status == domain.AdmissionAlreadyBooked {
		status = http.StatusOK
	}

	c.JSON(status, dto.ToBookingResponse(admission.Status, &admission.Detail))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email query parameter is required"})
		return
	}

	details, err := h.bookingService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingHistoryResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, dto.ToBookingHistoryResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.ClientEmail)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"status":     "cancelled",
		"booking_id": detail.BookingID,
		"class_id":   detail.ClassID,
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoSlotsAvailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUserNotRegistered),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
