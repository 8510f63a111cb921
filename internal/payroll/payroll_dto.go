package payroll

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Month      string `json:"month" binding:"required"`
	Year       int    `json:"year" binding:"required"`
}

type PayrollQuery struct {
	EmployeeID string `form:"employee_id"`
	Month      string `form:"month"`
	Year       int    `form:"year"`
}

type PayrollResponse struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employee_id"`
	Month       string             `json:"month"`
	Year        int                `json:"year"`
	BasicSalary float64            `json:"basic_salary"`
	Allowances  map[string]float64 `json:"allowances"`
	Deductions  map[string]float64 `json:"deductions"`
	EPFEmployee float64            `json:"epf_employee"`
	EPFEmployer float64            `json:"epf_employer"`
	GrossSalary float64            `json:"gross_salary"`
	NetSalary   float64            `json:"net_salary"`
	CreatedAt   string             `json:"created_at"`
}
