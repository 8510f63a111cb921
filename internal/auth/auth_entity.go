package auth

import (
	"time"

	"github.com/google/uuid"
)

// Valid user roles. Stored and carried in the token, but no endpoint
// restricts access by role.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleAccounts = "accounts"
	RoleFaculty  = "faculty"
	RoleStudent  = "student"
)

type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email      string    `gorm:"column:email;type:varchar(255);uniqueIndex:uq_user_email;not null"`
	Password   string    `gorm:"column:password;type:varchar(255);not null"`
	Name       string    `gorm:"column:name;type:varchar(255);not null"`
	Role       string    `gorm:"column:role;type:varchar(20);not null"`
	EmployeeID *string   `gorm:"column:employee_id;type:varchar(50)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
