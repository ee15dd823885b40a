package entity

// Persona is the legacy person record kept alongside the scheduling
// tables. It predates the box-scheduling schema and is unrelated to the
// doctor directory.
type Persona struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Age  *int   `gorm:"column:edad" json:"edad,omitempty"`
}

func (Persona) TableName() string {
	return "personas"
}
