package attendance

type MarkAttendanceRequest struct {
	PersonID   string `json:"person_id" binding:"required"`
	PersonType string `json:"person_type" binding:"required,oneof=employee student"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=present absent leave half_day"`
	Remarks    string `json:"remarks"`
	MarkedBy   string `json:"marked_by"`
}

type AttendanceQuery struct {
	PersonID   string `form:"person_id"`
	PersonType string `form:"person_type"`
	Date       string `form:"date"`
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	PersonID   string `json:"person_id"`
	PersonType string `json:"person_type"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Remarks    string `json:"remarks,omitempty"`
	MarkedBy   string `json:"marked_by,omitempty"`
	CreatedAt  string `json:"created_at"`
}
