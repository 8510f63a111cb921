package dashboard

type StatsResponse struct {
	TotalEmployees  int64   `json:"total_employees"`
	TotalStudents   int64   `json:"total_students"`
	TotalFaculty    int64   `json:"total_faculty"`
	TotalManagement int64   `json:"total_management"`
	TodayAttendance int64   `json:"today_attendance"`
	MonthlyPayroll  float64 `json:"monthly_payroll"`
}
