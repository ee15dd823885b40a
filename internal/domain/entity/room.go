package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomType distinguishes consultation boxes from procedure boxes. The
// Spanish labels are the values the catalog has always carried.
type RoomType string

const (
	RoomTypeConsultation RoomType = "Consulta"
	RoomTypeProcedure    RoomType = "Procedimiento"
)

// IsValid reports whether t is one of the known room types.
func (t RoomType) IsValid() bool {
	return t == RoomTypeConsultation || t == RoomTypeProcedure
}

// Room represents a physical consultation box, grouped by floor.
// Room numbers are administratively assigned; uniqueness is not enforced.
type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number      string    `gorm:"type:varchar(20);not null;index" json:"number"`
	Floor       int       `gorm:"not null;index" json:"floor"`
	Type        RoomType  `gorm:"type:varchar(20);not null" json:"type"`
	Specialty   string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Assignments []Assignment `gorm:"foreignKey:RoomID" json:"assignments,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
