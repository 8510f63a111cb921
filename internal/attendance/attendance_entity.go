package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusHalfDay = "half_day"

	PersonTypeEmployee = "employee"
	PersonTypeStudent  = "student"
)

// Attendance holds one row per (person_id, date). The index is deliberately
// non-unique: marking is a read-then-write upsert and concurrent submissions
// for the same key can race, which is an accepted limitation.
type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	PersonID   string    `gorm:"column:person_id;type:varchar(50);index:idx_attendance_person_date;not null"`
	PersonType string    `gorm:"column:person_type;type:varchar(20);not null"`
	Date       string    `gorm:"column:date;type:varchar(10);index:idx_attendance_person_date;not null"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"`
	Remarks    string    `gorm:"column:remarks;type:varchar(500)"`
	MarkedBy   string    `gorm:"column:marked_by;type:varchar(50)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}
