package student

type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Course    string `json:"course" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	Semester  int    `json:"semester" binding:"required"`
}

type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Course   string `json:"course" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Semester int    `json:"semester" binding:"required"`
}

type StudentResponse struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
	Semester  int    `json:"semester"`
	CreatedAt string `json:"created_at"`
}
