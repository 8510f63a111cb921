package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payroll is a snapshot of the employee's compensation at generation time;
// it is never recomputed when the employee record changes afterwards.
type Payroll struct {
	ID          uuid.UUID                              `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID  string                                 `gorm:"column:employee_id;type:varchar(50);uniqueIndex:uq_payroll_period;not null"`
	Month       string                                 `gorm:"column:month;type:varchar(20);uniqueIndex:uq_payroll_period;not null"`
	Year        int                                    `gorm:"column:year;uniqueIndex:uq_payroll_period;not null"`
	BasicSalary float64                                `gorm:"column:basic_salary;not null"`
	Allowances  datatypes.JSONType[map[string]float64] `gorm:"column:allowances"`
	Deductions  datatypes.JSONType[map[string]float64] `gorm:"column:deductions"`
	EPFEmployee float64                                `gorm:"column:epf_employee;not null"`
	EPFEmployer float64                                `gorm:"column:epf_employer;not null"`
	GrossSalary float64                                `gorm:"column:gross_salary;not null"`
	NetSalary   float64                                `gorm:"column:net_salary;not null"`
	CreatedAt   time.Time                              `gorm:"column:created_at"`
	UpdatedAt   time.Time                              `gorm:"column:updated_at"`
}

func (Payroll) TableName() string {
	return "payroll"
}
