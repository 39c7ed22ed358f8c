package handler

// registerRequest mirrors the public registration contract. The username is an
// e-mail address and doubles as the login.
type registerRequest struct {
	Username  string `json:"username"  validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8,max=16"`
	FirstName string `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=16"`
	Phone     string `json:"phone"     validate:"required,min=6,max=20"`
	Role      string `json:"role"      validate:"omitempty,oneof=USER ADMIN"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type newPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=8,max=16"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=16"`
}
