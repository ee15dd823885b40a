package converter

import (
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
)

// RoomToResponse converts a Room entity to a RoomResponse DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		Floor:       room.Floor,
		Type:        string(room.Type),
		Specialty:   room.Specialty,
		Description: room.Description,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

// RoomsToResponses converts a slice of Room entities to DTOs
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}
