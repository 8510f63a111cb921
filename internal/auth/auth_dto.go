package auth

type RegisterRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	Name       string  `json:"name" binding:"required"`
	Role       string  `json:"role" binding:"required,oneof=admin hr accounts faculty student"`
	EmployeeID *string `json:"employee_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public user view; the password hash never leaves the
// service layer.
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
