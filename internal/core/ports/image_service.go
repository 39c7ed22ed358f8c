package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// ImageService owns the blob lifecycle for ad pictures and avatars.
// Replacement is orchestrated by the owning service as store-new, swap
// reference, delete-old: a failed upload must leave the previous image and
// its parent link untouched.
type ImageService interface {
	Store(ctx context.Context, data []byte, mediaType string) (*domain.Image, error)
	// Fetch returns the raw bytes and media type for direct streaming.
	Fetch(ctx context.Context, imageID int64) (*domain.Image, error)
	// Remove deletes the image if it exists; removing an absent image is not
	// an error.
	Remove(ctx context.Context, imageID int64) error
}
