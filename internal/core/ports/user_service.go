package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// UserProfile is the password-free projection of a user account.
type UserProfile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role
	AvatarID  int64 // 0 = no avatar
}

// UpdateProfileInput carries the mutable profile fields. All three are
// required; blanks are rejected.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
}

// UserService covers profile reads and self-scoped profile mutations.
type UserService interface {
	GetProfile(ctx context.Context, identity domain.Identity) (*UserProfile, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, input UpdateProfileInput) (*UserProfile, error)
	// UpdateAvatar swaps the caller's avatar; the previous image is deleted
	// only after the new one is durably stored.
	UpdateAvatar(ctx context.Context, identity domain.Identity, data []byte, mediaType string) (*UserProfile, error)
	ListAll(ctx context.Context) ([]UserProfile, error)
	GetByID(ctx context.Context, id int64) (*UserProfile, error)
}
