package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// RegisterInput carries everything needed to create a new account.
// Role defaults to USER when empty.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role
}

// AuthService implements credential-based registration and authentication.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user. Unknown
	// username and wrong password are deliberately indistinguishable to the
	// caller (both surface domain.ErrBadCredentials).
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, identity domain.Identity, currentPassword, newPassword string) error
}
