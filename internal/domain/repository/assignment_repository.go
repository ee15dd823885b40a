package repository

import (
	"box-scheduler-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(db *gorm.DB, assignment *entity.Assignment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Assignment, error)
	FindAll(db *gorm.DB, filter *entity.AssignmentFilter) ([]entity.Assignment, error)
	// FindByRoomAndWeekdayForUpdate loads the conflict set for one
	// (room, weekday) partition under a row lock, so a concurrent create
	// against the same partition blocks until the transaction finishes.
	FindByRoomAndWeekdayForUpdate(db *gorm.DB, roomID uuid.UUID, weekday string) ([]entity.Assignment, error)
	Update(db *gorm.DB, assignment *entity.Assignment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
