package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must enforce the case-insensitive uniqueness of usernames at the
// write layer (returning domain.ErrUserExists) — the service's pre-check
// alone cannot close the check-then-insert race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername matches the username ignoring case.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
