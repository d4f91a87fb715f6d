package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateClassRequest struct {
	Name       string `json:"name" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	Instructor string `json:"instructor" binding:"required"`
	TotalSlots int    `json:"total_slots" binding:"required,gt=0"`
}

type BookRequest struct {
	ClassID     int64  `json:"class_id" binding:"required,gt=0"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email" binding:"required,email"`
}

type CancelBookingRequest struct {
	ClientEmail string `json:"client_email" binding:"required,email"`
}
