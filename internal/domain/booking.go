package domain

import "time"

type AdmissionStatus string

const (
	AdmissionCreated       AdmissionStatus = "created"
	AdmissionAlreadyBooked AdmissionStatus = "already_booked"
)

type Booking struct {
	ID       int64     `json:"id"`
	ClassID  int64     `json:"class_id"`
	UserID   int64     `json:"user_id"`
	BookedAt time.Time `json:"booked_at"`
}

// BookingDetail is a booking joined with its class and user.
type BookingDetail struct {
	BookingID  int64     `json:"booking_id"`
	ClassID    int64     `json:"class_id"`
	ClassName  string    `json:"class_name"`
	StartTime  time.Time `json:"start_time"`
	Instructor string    `json:"instructor"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserEmail  string    `json:"user_email"`
	BookedAt   time.Time `json:"booked_at"`
}

// Admission is the outcome of a booking request. AdmissionAlreadyBooked is a
// success variant carrying the pre-existing booking; no slot is consumed.
type Admission struct {
	Status AdmissionStatus `json:"status"`
	Detail BookingDetail   `json:"detail"`
}

type BookInput struct {
	ClassID     int64
	ClientName  string
	ClientEmail string
}
