package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

type commentFixture struct {
	*adFixture
	svc  *CommentService
	adID int64
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	base := newAdFixture(t)
	svc := NewCommentService(base.comments, base.ads, base.users, testLogger())
	ad := base.createAd(t, base.alice)
	return &commentFixture{adFixture: base, svc: svc, adID: ad.ID}
}

func TestCommentService_Add_Success(t *testing.T) {
	f := newCommentFixture(t)

	view, err := f.svc.Add(context.Background(), f.bob, f.adID, "Still available?")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if view.AuthorID != f.bob.ID {
		t.Fatalf("expected author %d, got %d", f.bob.ID, view.AuthorID)
	}
	if view.AuthorFirstName != "Bob" {
		t.Fatalf("expected author name Bob, got %q", view.AuthorFirstName)
	}
	if view.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned creation time")
	}
}

func TestCommentService_Add_Validation(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Add(context.Background(), f.bob, f.adID, "  "); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for blank text, got %v", err)
	}
	if _, err := f.svc.Add(context.Background(), f.bob, 9999, "hi"); !errors.Is(err, domain.ErrAdNotFound) {
		t.Fatalf("expected ErrAdNotFound for unknown ad, got %v", err)
	}
}

func TestCommentService_List_CreationOrder(t *testing.T) {
	f := newCommentFixture(t)

	for _, text := range []string{"first", "second", "third"} {
		if _, err := f.svc.Add(context.Background(), f.bob, f.adID, text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}

	views, err := f.svc.List(context.Background(), f.adID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(views))
	}
	for i, want := range []string{"first", "second", "third"} {
		if views[i].Text != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, views[i].Text)
		}
	}

	if _, err := f.svc.List(context.Background(), 9999); !errors.Is(err, domain.ErrAdNotFound) {
		t.Fatalf("expected ErrAdNotFound for unknown ad, got %v", err)
	}
}

func TestCommentService_Update_OnlyTextMutable(t *testing.T) {
	f := newCommentFixture(t)
	created, err := f.svc.Add(context.Background(), f.bob, f.adID, "original")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := f.svc.Update(context.Background(), f.bob, f.adID, created.ID, "edited")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Text != "edited" {
		t.Fatalf("text not updated: %q", updated.Text)
	}
	if updated.AuthorID != created.AuthorID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
}

func TestCommentService_Update_OwnershipEnforced(t *testing.T) {
	f := newCommentFixture(t)
	created, err := f.svc.Add(context.Background(), f.bob, f.adID, "mine")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := f.svc.Update(context.Background(), f.alice, f.adID, created.ID, "hijack"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), f.admin, f.adID, created.ID, "moderated"); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if _, err := f.svc.Update(context.Background(), f.bob, f.adID, 9999, "x"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_Update_ScopedToAd(t *testing.T) {
	f := newCommentFixture(t)
	created, err := f.svc.Add(context.Background(), f.bob, f.adID, "scoped")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	otherAd := f.createAd(t, f.alice)

	// the comment exists, but not under that ad
	if _, err := f.svc.Update(context.Background(), f.bob, otherAd.ID, created.ID, "x"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound across ads, got %v", err)
	}
}

func TestCommentService_Delete(t *testing.T) {
	f := newCommentFixture(t)
	created, err := f.svc.Add(context.Background(), f.bob, f.adID, "bye")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := f.svc.Delete(context.Background(), f.alice, f.adID, created.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.bob, f.adID, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.bob, f.adID, created.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound for repeated delete, got %v", err)
	}
}
