package repository

import (
	"errors"

	"box-scheduler-backend/internal/domain/entity"
	domainRepo "box-scheduler-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type personaRepository struct{}

func NewPersonaRepository() domainRepo.PersonaRepository {
	return &personaRepository{}
}

func (r *personaRepository) Create(db *gorm.DB, persona *entity.Persona) error {
	return db.Create(persona).Error
}

func (r *personaRepository) FindByID(db *gorm.DB, id int) (*entity.Persona, error) {
	var persona entity.Persona
	err := db.Where("id = ?", id).First(&persona).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &persona, nil
}

func (r *personaRepository) FindAll(db *gorm.DB) ([]entity.Persona, error) {
	var personas []entity.Persona
	err := db.Order("id ASC").Find(&personas).Error
	if err != nil {
		return nil, err
	}
	return personas, nil
}

func (r *personaRepository) Update(db *gorm.DB, persona *entity.Persona) error {
	return db.Save(persona).Error
}

func (r *personaRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Persona{})
	return affected.RowsAffected, affected.Error
}
