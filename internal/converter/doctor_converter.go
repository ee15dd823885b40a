package converter

import (
	"box-scheduler-backend/internal/delivery/dto"
	"box-scheduler-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	schedule := make([]dto.ScheduleBlockResponse, len(doctor.Schedule))
	for i, block := range doctor.Schedule {
		schedule[i] = dto.ScheduleBlockResponse{
			Weekday:   block.Weekday,
			StartTime: block.StartTime,
			EndTime:   block.EndTime,
			Room:      block.Room,
		}
	}

	return &dto.DoctorResponse{
		RUT:       doctor.RUT,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Status:    doctor.Status,
		Email:     doctor.Email,
		Phone:     doctor.Phone,
		Schedule:  schedule,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// SpecialtyStatsToResponses converts specialty statistics to DTOs
func SpecialtyStatsToResponses(stats []entity.SpecialtyStat) []dto.SpecialtyStatResponse {
	responses := make([]dto.SpecialtyStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = dto.SpecialtyStatResponse{
			Specialty:  stat.Specialty,
			Count:      stat.Count,
			Percentage: stat.Percentage,
		}
	}
	return responses
}
