package domain

import "time"

type Class struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	StartTime      time.Time `json:"start_time"`
	Instructor     string    `json:"instructor"`
	TotalSlots     int       `json:"total_slots"`
	AvailableSlots int       `json:"available_slots"`
	CreatedAt      time.Time `json:"created_at"`
}

// ClassReminder is a class that is about to start, together with the
// number of bookings it holds. Produced once per class by the reminder job.
type ClassReminder struct {
	Class  Class `json:"class"`
	Booked int   `json:"booked"`
}

type CreateClassInput struct {
	Name       string
	StartTime  time.Time
	Instructor string
	TotalSlots int
}
