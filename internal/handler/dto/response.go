package dto

import (
	"time"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ClassResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	StartTime      string `json:"start_time"`
	Instructor     string `json:"instructor"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
}

type BookingResponse struct {
	Status      string `json:"status"`
	BookingID   int64  `json:"booking_id"`
	ClassID     int64  `json:"class_id"`
	ClassName   string `json:"class_name"`
	StartTime   string `json:"start_time"`
	Instructor  string `json:"instructor"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	BookedAt    string `json:"booked_at"`
}

// BookingHistoryResponse is a history line: no admission status, that only
// makes sense on the booking call itself.
type BookingHistoryResponse struct {
	BookingID   int64  `json:"booking_id"`
	ClassID     int64  `json:"class_id"`
	ClassName   string `json:"class_name"`
	StartTime   string `json:"start_time"`
	Instructor  string `json:"instructor"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	BookedAt    string `json:"booked_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ID:             c.ID,
		Name:           c.Name,
		StartTime:      c.StartTime.Format(time.RFC3339),
		Instructor:     c.Instructor,
		TotalSlots:     c.TotalSlots,
		AvailableSlots: c.AvailableSlots,
	}
}

func ToBookingHistoryResponse(d *domain.BookingDetail) BookingHistoryResponse {
	return BookingHistoryResponse{
		BookingID:   d.BookingID,
		ClassID:     d.ClassID,
		ClassName:   d.ClassName,
		StartTime:   d.StartTime.Format(time.RFC3339),
		Instructor:  d.Instructor,
		ClientName:  d.UserName,
		ClientEmail: d.UserEmail,
		BookedAt:    d.BookedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(status domain.AdmissionStatus, d *domain.BookingDetail) BookingResponse {
	return BookingResponse{
		Status:      string(status),
		BookingID:   d.BookingID,
		ClassID:     d.ClassID,
		ClassName:   d.ClassName,
		StartTime:   d.StartTime.Format(time.RFC3339),
		Instructor:  d.Instructor,
		ClientName:  d.UserName,
		ClientEmail: d.UserEmail,
		BookedAt:    d.BookedAt.Format(time.RFC3339),
	}
}
