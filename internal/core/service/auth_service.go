package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// TokenRevoker invalidates tokens issued before a point in time, so a
// password change cuts off sessions opened with the old password.
type TokenRevoker interface {
	RevokeOlderThan(ctx context.Context, userID int64, t time.Time) error
}

// AuthService implements registration, login and password changes.
type AuthService struct {
	users     ports.UserRepository
	revoker   TokenRevoker // optional
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new enabled account with a bcrypt-hashed password.
// The username's case-insensitive uniqueness is enforced by the repository's
// write-layer constraint, not by a lookup here: two concurrent registrations
// of the same name race past any pre-check.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if isBlank(input.Username) || isBlank(input.Password) ||
		isBlank(input.FirstName) || isBlank(input.LastName) || isBlank(input.Phone) {
		return nil, domain.ErrInvalidArgument
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidArgument
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		Enabled:      true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates a username/password pair and returns a signed token.
// Unknown usernames and wrong passwords both surface ErrBadCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if isBlank(username) || isBlank(password) {
		return "", nil, domain.ErrBadCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("username", username).Msg("login for unknown user")
			return "", nil, domain.ErrBadCredentials
		}
		return "", nil, err
	}

	if !user.Enabled {
		return "", nil, domain.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrBadCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// ChangePassword verifies the caller's current password, stores a new hash
// and revokes tokens issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, identity domain.Identity, currentPassword, newPassword string) error {
	if isBlank(newPassword) {
		return domain.ErrInvalidArgument
	}

	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.revoker != nil {
		if err := s.revoker.RevokeOlderThan(ctx, user.ID, time.Now().UTC()); err != nil {
			s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to revoke old tokens")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
