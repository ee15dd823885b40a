package repository

import (
	"errors"

	"box-scheduler-backend/internal/domain/entity"
	domainRepo "box-scheduler-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Order("floor ASC, number ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByFloor(db *gorm.DB, floor int) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Where("floor = ?", floor).Order("number ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Update(db *gorm.DB, room *entity.Room) error {
	return db.Omit("Assignments").Save(room).Error
}

func (r *roomRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Room{})
	return affected.RowsAffected, affected.Error
}
