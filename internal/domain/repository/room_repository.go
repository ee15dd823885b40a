package repository

import (
	"box-scheduler-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindAll(db *gorm.DB) ([]entity.Room, error)
	FindByFloor(db *gorm.DB, floor int) ([]entity.Room, error)
	Update(db *gorm.DB, room *entity.Room) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
