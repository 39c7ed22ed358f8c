package handler

// userResponse is the password-free account projection. Image is a relative
// URL to the avatar endpoint, empty when no avatar is set.
type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Image     string `json:"image,omitempty"`
}

type updateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string `json:"lastName"  validate:"required,min=2,max=16"`
	Phone     string `json:"phone"     validate:"required,min=6,max=20"`
}

type usersResponse struct {
	Count   int            `json:"count"`
	Results []userResponse `json:"results"`
}
