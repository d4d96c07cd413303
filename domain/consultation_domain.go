package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDoctors       = "doctors retrieved successfully"
	MessageSuccessBookConsultation = "consultation booked successfully"
	MessageSuccessGetBookings      = "consultation bookings retrieved successfully"

	MessageFailedGetDoctors       = "failed to retrieve doctors"
	MessageFailedBookConsultation = "failed to book consultation"
	MessageFailedGetBookings      = "failed to retrieve consultation bookings"

	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrInvalidSchedule   = errors.New("invalid consultation schedule")
	ErrScheduleInThePast = errors.New("consultation schedule is in the past")
	ErrBookingNotFound   = errors.New("consultation booking not found")
)

type (
	DoctorResponse struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Specialty  string  `json:"specialty"`
		Experience string  `json:"experience"`
		Rating     float64 `json:"rating"`
		Price      string  `json:"price"`
	}

	BookConsultationRequest struct {
		DoctorID    string `json:"doctor_id" validate:"required,uuid"`
		ScheduledAt string `json:"scheduled_at" validate:"required"` // RFC3339
		Type        string `json:"type" validate:"required,oneof=video chat"`
		Message     string `json:"message" validate:"omitempty"`
	}

	ConsultationBookingResponse struct {
		ID          string         `json:"id"`
		Doctor      DoctorResponse `json:"doctor"`
		ScheduledAt time.Time      `json:"scheduled_at"`
		Type        string         `json:"type"`
		Message     string         `json:"message,omitempty"`
		Status      string         `json:"status"`
		CreatedAt   time.Time      `json:"created_at"`
	}
)
