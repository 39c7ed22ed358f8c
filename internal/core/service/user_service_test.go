package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

type userFixture struct {
	users  *stubUserRepo
	images *stubImageRepo
	svc    *UserService
	alice  domain.Identity
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	users := newStubUserRepo()
	images := newStubImageRepo()
	svc := NewUserService(users, NewImageService(images, testLogger()), testLogger())

	u, err := users.Create(context.Background(), &domain.User{
		Username:  "alice@mail.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "+7900",
		Role:      domain.RoleUser,
		Enabled:   true,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return &userFixture{
		users:  users,
		images: images,
		svc:    svc,
		alice:  domain.Identity{ID: u.ID, Username: u.Username, Role: u.Role},
	}
}

func TestUserService_GetProfile(t *testing.T) {
	f := newUserFixture(t)

	profile, err := f.svc.GetProfile(context.Background(), f.alice)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if profile.Username != "alice@mail.com" || profile.FirstName != "Alice" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	f := newUserFixture(t)

	if _, err := f.svc.UpdateProfile(context.Background(), f.alice, ports.UpdateProfileInput{
		FirstName: "Alice", LastName: " ", Phone: "+7900",
	}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for blank last name, got %v", err)
	}

	profile, err := f.svc.UpdateProfile(context.Background(), f.alice, ports.UpdateProfileInput{
		FirstName: "Alisa", LastName: "Smith", Phone: "+7911",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if profile.FirstName != "Alisa" || profile.Phone != "+7911" {
		t.Fatalf("profile not updated: %+v", profile)
	}

	stored, err := f.users.FindByID(context.Background(), f.alice.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.Username != "alice@mail.com" {
		t.Fatalf("username must be immutable, got %q", stored.Username)
	}
}

func TestUserService_UpdateAvatar_ReplacesOld(t *testing.T) {
	f := newUserFixture(t)

	first, err := f.svc.UpdateAvatar(context.Background(), f.alice, []byte{1, 2}, "image/png")
	if err != nil {
		t.Fatalf("first avatar upload failed: %v", err)
	}
	if first.AvatarID == 0 {
		t.Fatalf("expected avatar reference")
	}

	second, err := f.svc.UpdateAvatar(context.Background(), f.alice, []byte{3, 4}, "image/jpeg")
	if err != nil {
		t.Fatalf("second avatar upload failed: %v", err)
	}
	if second.AvatarID == first.AvatarID {
		t.Fatalf("avatar reference not swapped")
	}
	if _, err := f.images.FindByID(context.Background(), first.AvatarID); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("old avatar blob not deleted")
	}
}

func TestUserService_UpdateAvatar_FailedUploadKeepsOld(t *testing.T) {
	f := newUserFixture(t)

	first, err := f.svc.UpdateAvatar(context.Background(), f.alice, []byte{1, 2}, "image/png")
	if err != nil {
		t.Fatalf("avatar upload failed: %v", err)
	}

	f.images.failCreate = true
	if _, err := f.svc.UpdateAvatar(context.Background(), f.alice, []byte{9}, "image/png"); err == nil {
		t.Fatalf("expected error from failing storage")
	}
	f.images.failCreate = false

	profile, err := f.svc.GetProfile(context.Background(), f.alice)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.AvatarID != first.AvatarID {
		t.Fatalf("avatar reference changed despite failed upload")
	}
	if _, err := f.images.FindByID(context.Background(), first.AvatarID); err != nil {
		t.Fatalf("old avatar lost: %v", err)
	}
}

func TestUserService_Lookups(t *testing.T) {
	f := newUserFixture(t)

	all, err := f.svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 user, got %d", len(all))
	}

	if _, err := f.svc.GetByID(context.Background(), f.alice.ID); err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if _, err := f.svc.GetByID(context.Background(), 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
