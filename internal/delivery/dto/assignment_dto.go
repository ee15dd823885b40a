package dto

import (
	"time"

	"box-scheduler-backend/internal/service"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAssignmentRequest struct {
	DoctorRUT string    `json:"doctor_rut" validate:"required"`
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
	Weekday   string    `json:"weekday" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"` // HH:MM
	EndTime   string    `json:"end_time" validate:"omitempty"`  // defaults to start + 1h
	Specialty string    `json:"specialty" validate:"omitempty,max=100"`
}

// UpdateAssignmentRequest replaces the full assignment record.
type UpdateAssignmentRequest struct {
	DoctorRUT string    `json:"doctor_rut" validate:"required"`
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
	Weekday   string    `json:"weekday" validate:"required"`
	StartTime string    `json:"start_time" validate:"required"`
	EndTime   string    `json:"end_time" validate:"omitempty"`
	Specialty string    `json:"specialty" validate:"omitempty,max=100"`
}

// Response DTOs

type AssignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	DoctorRUT  string    `json:"doctor_rut"`
	DoctorName string    `json:"doctor_name,omitempty"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number,omitempty"`
	Floor      int       `json:"floor,omitempty"`
	Weekday    string    `json:"weekday"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Specialty  string    `json:"specialty,omitempty"`
	RoomType   string    `json:"room_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

type AvailabilityResponse struct {
	RoomID      uuid.UUID          `json:"room_id"`
	Weekday     string             `json:"weekday"`
	SlotMinutes int                `json:"slot_minutes"`
	Slots       []service.TimeSlot `json:"slots"`
}
