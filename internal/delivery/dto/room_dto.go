package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateRoomRequest struct {
	Number      string `json:"number" validate:"required,max=20"`
	Floor       int    `json:"floor" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

// UpdateRoomRequest replaces the full room record.
type UpdateRoomRequest struct {
	Number      string `json:"number" validate:"required,max=20"`
	Floor       int    `json:"floor" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Floor       int       `json:"floor"`
	Type        string    `json:"type"`
	Specialty   string    `json:"specialty,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

type FloorListResponse struct {
	Floors []int `json:"floors"`
}

// FloorSuggestionResponse carries the suggested floor for a specialty.
// Floor is null when no keyword matched.
type FloorSuggestionResponse struct {
	Specialty string `json:"specialty"`
	Floor     *int   `json:"floor"`
}
