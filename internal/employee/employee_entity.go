package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeFaculty    = "faculty"
	TypeManagement = "management"
)

// Employee is keyed externally by EmployeeID (the natural key); ID is the row
// identifier and never drives lookups from the API surface.
type Employee struct {
	ID           uuid.UUID                              `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID   string                                 `gorm:"column:employee_id;type:varchar(50);uniqueIndex:uq_employee_number;not null"`
	Name         string                                 `gorm:"column:name;type:varchar(255);not null"`
	Email        string                                 `gorm:"column:email;type:varchar(255);not null"`
	Phone        string                                 `gorm:"column:phone;type:varchar(50)"`
	Department   string                                 `gorm:"column:department;type:varchar(100)"`
	Designation  string                                 `gorm:"column:designation;type:varchar(100)"`
	EmployeeType string                                 `gorm:"column:employee_type;type:varchar(20);not null"`
	JoiningDate  time.Time                              `gorm:"column:joining_date;type:date"`
	BasicSalary  float64                                `gorm:"column:basic_salary;not null"`
	CTC          float64                                `gorm:"column:ctc;not null"`
	Allowances   datatypes.JSONType[map[string]float64] `gorm:"column:allowances"`
	CreatedAt    time.Time                              `gorm:"column:created_at"`
	UpdatedAt    time.Time                              `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
