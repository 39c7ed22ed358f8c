package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
// Lookups are always scoped to the parent ad so a comment id from another ad
// can never be addressed.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByAdAndID(ctx context.Context, adID, commentID int64) (*domain.Comment, error)
	// FindAllByAd returns the ad's comments in creation-time ascending order.
	FindAllByAd(ctx context.Context, adID int64) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, adID, commentID int64) error
	// DeleteAllByAd removes every comment of an ad (ad deletion cascade).
	DeleteAllByAd(ctx context.Context, adID int64) error
}
