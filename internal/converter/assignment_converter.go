package converter

import (
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentToResponse converts an Assignment entity to a DTO. The room
// relationship, when loaded, fills the denormalized display fields.
func AssignmentToResponse(assignment *entity.Assignment) *dto.AssignmentResponse {
	if assignment == nil {
		return nil
	}

	response := &dto.AssignmentResponse{
		ID:        assignment.ID,
		DoctorRUT: assignment.DoctorRUT,
		RoomID:    assignment.RoomID,
		Weekday:   assignment.Weekday,
		StartTime: assignment.StartTime,
		EndTime:   assignment.EndTime,
		Specialty: assignment.Specialty,
		RoomType:  string(assignment.RoomType),
		CreatedAt: assignment.CreatedAt,
		UpdatedAt: assignment.UpdatedAt,
	}

	if assignment.Room.ID != uuid.Nil {
		response.RoomNumber = assignment.Room.Number
		response.Floor = assignment.Room.Floor
	}

	return response
}

// AssignmentsToResponses converts a slice of Assignment entities to DTOs
func AssignmentsToResponses(assignments []entity.Assignment) []dto.AssignmentResponse {
	responses := make([]dto.AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *AssignmentToResponse(&assignments[i])
	}
	return responses
}
