package converter

import (
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
)

// PersonaToResponse converts a Persona entity to a PersonaResponse DTO
func PersonaToResponse(persona *entity.Persona) *dto.PersonaResponse {
	if persona == nil {
		return nil
	}

	return &dto.PersonaResponse{
		ID:     persona.ID,
		Nombre: persona.Name,
		Edad:   persona.Age,
	}
}

// PersonasToResponses converts a slice of Persona entities to DTOs
func PersonasToResponses(personas []entity.Persona) []dto.PersonaResponse {
	responses := make([]dto.PersonaResponse, len(personas))
	for i := range personas {
		responses[i] = *PersonaToResponse(&personas[i])
	}
	return responses
}
