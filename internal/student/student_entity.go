package student

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StudentID string    `gorm:"column:student_id;type:varchar(50);uniqueIndex:uq_student_number;not null"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(50)"`
	Course    string    `gorm:"column:course;type:varchar(100);not null"`
	Year      int       `gorm:"column:year;not null"`
	Semester  int       `gorm:"column:semester;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Student) TableName() string {
	return "students"
}
