package employee

type CreateEmployeeRequest struct {
	EmployeeID   string             `json:"employee_id"` // generated when omitted
	Name         string             `json:"name" binding:"required"`
	Email        string             `json:"email" binding:"required,email"`
	Phone        string             `json:"phone" binding:"required"`
	Department   string             `json:"department" binding:"required"`
	Designation  string             `json:"designation" binding:"required"`
	EmployeeType string             `json:"employee_type" binding:"required,oneof=faculty management"`
	JoiningDate  string             `json:"joining_date" binding:"required"`
	BasicSalary  float64            `json:"basic_salary" binding:"gte=0"`
	CTC          float64            `json:"ctc" binding:"gte=0"`
	Allowances   map[string]float64 `json:"allowances"`
}

// UpdateEmployeeRequest replaces every mutable field; the employee_id natural
// key is not mutable through this path.
type UpdateEmployeeRequest struct {
	Name         string             `json:"name" binding:"required"`
	Email        string             `json:"email" binding:"required,email"`
	Phone        string             `json:"phone" binding:"required"`
	Department   string             `json:"department" binding:"required"`
	Designation  string             `json:"designation" binding:"required"`
	EmployeeType string             `json:"employee_type" binding:"required,oneof=faculty management"`
	JoiningDate  string             `json:"joining_date" binding:"required"`
	BasicSalary  float64            `json:"basic_salary" binding:"gte=0"`
	CTC          float64            `json:"ctc" binding:"gte=0"`
	Allowances   map[string]float64 `json:"allowances"`
}

type EmployeeResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Department   string             `json:"department"`
	Designation  string             `json:"designation"`
	EmployeeType string             `json:"employee_type"`
	JoiningDate  string             `json:"joining_date"`
	BasicSalary  float64            `json:"basic_salary"`
	CTC          float64            `json:"ctc"`
	Allowances   map[string]float64 `json:"allowances"`
	CreatedAt    string             `json:"created_at"`
}

// EmployeeOption is the slim projection served from the options cache.
type EmployeeOption struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}
