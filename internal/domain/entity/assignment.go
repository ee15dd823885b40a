package entity

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one doctor to one room for one weekday and time range.
// Specialty and RoomType are denormalized copies kept for display and
// filtering. Edits are full replaces; there is no history.
//
// Invariant: for a fixed (RoomID, Weekday), no two assignments may have
// overlapping [StartTime, EndTime) intervals.
type Assignment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorRUT string    `gorm:"column:doctor_rut;type:varchar(20);not null;index" json:"doctor_rut"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_room_weekday" json:"room_id"`
	Weekday   string    `gorm:"type:varchar(10);not null;index:idx_assignments_room_weekday" json:"weekday"`
	StartTime string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	Specialty string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	RoomType  RoomType  `gorm:"type:varchar(20)" json:"room_type,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentFilter narrows assignment listings. Supplied fields are
// combined with AND.
type AssignmentFilter struct {
	Weekday   string
	RoomID    uuid.UUID
	DoctorRUT string
	Specialty string
	Floor     int
}
