package ports

import (
	"context"
	"time"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// CommentView is the author-enriched projection of a comment.
type CommentView struct {
	ID              int64
	AdID            int64
	AuthorID        int64
	AuthorFirstName string
	Text            string
	CreatedAt       time.Time
}

// CommentService defines comment use cases, always scoped to a parent ad.
type CommentService interface {
	// List fails with domain.ErrAdNotFound when the ad does not exist;
	// otherwise returns the ad's comments in creation order.
	List(ctx context.Context, adID int64) ([]CommentView, error)
	Add(ctx context.Context, identity domain.Identity, adID int64, text string) (*CommentView, error)
	Update(ctx context.Context, identity domain.Identity, adID, commentID int64, text string) (*CommentView, error)
	Delete(ctx context.Context, identity domain.Identity, adID, commentID int64) error
}
