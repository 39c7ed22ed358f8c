package domain

// Role determines which mutations an identity may perform beyond its own
// resources.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models a registered account. Username is unique case-insensitively and
// immutable after registration.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Role         Role   `json:"role"`
	Enabled      bool   `json:"enabled"`
	AvatarID     int64  `json:"avatar_id,omitempty"` // 0 = no avatar
}

// Identity is the authenticated caller attached to every service call that
// mutates state. It carries only what authorization decisions need.
type Identity struct {
	ID       int64
	Username string
	Role     Role
}

// CanMutate is the single ownership predicate applied before every mutating
// operation on ads and comments: admins may touch anything, everyone else
// only their own records.
func (i Identity) CanMutate(ownerID int64) bool {
	return i.Role == RoleAdmin || i.ID == ownerID
}
