package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// UserService covers profile reads and self-scoped profile mutations.
type UserService struct {
	users  ports.UserRepository
	images ports.ImageService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, images ports.ImageService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, images: images, logger: logger}
}

// GetProfile returns the caller's own profile projection.
func (s *UserService) GetProfile(ctx context.Context, identity domain.Identity) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

// UpdateProfile updates the caller's own record. There is no foreign-id
// parameter: profile edits are always self-scoped.
func (s *UserService) UpdateProfile(ctx context.Context, identity domain.Identity, input ports.UpdateProfileInput) (*ports.UserProfile, error) {
	if isBlank(input.FirstName) || isBlank(input.LastName) || isBlank(input.Phone) {
		return nil, domain.ErrInvalidArgument
	}

	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("user_id", user.ID).Msg("profile updated")
	return toProfile(user), nil
}

// UpdateAvatar swaps the caller's avatar. The new blob is stored before the
// reference moves and the old blob is deleted only after the swap, so a
// failed upload leaves the previous avatar fully intact.
func (s *UserService) UpdateAvatar(ctx context.Context, identity domain.Identity, data []byte, mediaType string) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	stored, err := s.images.Store(ctx, data, mediaType)
	if err != nil {
		return nil, err
	}

	oldAvatarID := user.AvatarID
	user.AvatarID = stored.ID
	if err := s.users.Update(ctx, user); err != nil {
		// the user still points at the old avatar; drop the unattached blob
		_ = s.images.Remove(ctx, stored.ID)
		return nil, err
	}

	if oldAvatarID != 0 {
		if err := s.images.Remove(ctx, oldAvatarID); err != nil {
			s.logger.Warn().Err(err).Int64("image_id", oldAvatarID).Msg("failed to remove replaced avatar")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Int64("avatar_id", stored.ID).Msg("avatar updated")
	return toProfile(user), nil
}

// ListAll returns every account. The transport layer restricts this to
// admins.
func (s *UserService) ListAll(ctx context.Context) ([]ports.UserProfile, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]ports.UserProfile, len(users))
	for i, u := range users {
		profiles[i] = *toProfile(u)
	}
	return profiles, nil
}

// GetByID looks up any account by id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*ports.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func toProfile(u *domain.User) *ports.UserProfile {
	return &ports.UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
		AvatarID:  u.AvatarID,
	}
}
