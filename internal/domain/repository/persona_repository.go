package repository

import (
	"box-scheduler-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonaRepository interface {
	Create(db *gorm.DB, persona *entity.Persona) error
	FindByID(db *gorm.DB, id int) (*entity.Persona, error)
	FindAll(db *gorm.DB) ([]entity.Persona, error)
	Update(db *gorm.DB, persona *entity.Persona) error
	Delete(db *gorm.DB, id int) (int64, error)
}
