package repository

import (
	"errors"

	"box-scheduler-backend/internal/domain/entity"
	domainRepo "box-scheduler-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type assignmentRepository struct{}

func NewAssignmentRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) Create(db *gorm.DB, assignment *entity.Assignment) error {
	return db.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := db.Preload("Room").Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAll(db *gorm.DB, filter *entity.AssignmentFilter) ([]entity.Assignment, error) {
	query := db.Model(&entity.Assignment{}).Joins("Room")

	if filter != nil {
		if filter.Weekday != "" {
			query = query.Where("assignments.weekday = ?", filter.Weekday)
		}
		if filter.RoomID != uuid.Nil {
			query = query.Where("assignments.room_id = ?", filter.RoomID)
		}
		if filter.DoctorRUT != "" {
			query = query.Where("assignments.doctor_rut = ?", filter.DoctorRUT)
		}
		if filter.Specialty != "" {
			query = query.Where("assignments.specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.Floor != 0 {
			query = query.Where(`"Room".floor = ?`, filter.Floor)
		}
	}

	var assignments []entity.Assignment
	err := query.Order("assignments.weekday ASC, assignments.start_time ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindByRoomAndWeekdayForUpdate locks the (room, weekday) partition so a
// conflict-check-then-insert pair runs as one atomic unit. Must be called
// inside a transaction.
func (r *assignmentRepository) FindByRoomAndWeekdayForUpdate(db *gorm.DB, roomID uuid.UUID, weekday string) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ? AND weekday = ?", roomID, weekday).
		Order("start_time ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) Update(db *gorm.DB, assignment *entity.Assignment) error {
	return db.Omit("Room").Save(assignment).Error
}

func (r *assignmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Assignment{})
	return affected.RowsAffected, affected.Error
}
