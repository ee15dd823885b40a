package repository

import "box-scheduler-backend/internal/domain/entity"

// DoctorDirectory is the read side over the parsed schedule export. The
// snapshot is built once at startup and is immutable afterwards, so all
// operations are pure reads and safe for concurrent use.
type DoctorDirectory interface {
	GetAll() []entity.Doctor
	FindByRUT(rut string) *entity.Doctor
	Search(filter entity.DoctorFilter) []entity.Doctor
	Specialties() []string
	Rooms() []string
	SpecialtyStats() []entity.SpecialtyStat
}
