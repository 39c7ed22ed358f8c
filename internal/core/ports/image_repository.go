package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// ImageRepository stores raw binary payloads with their media type.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.Image) (*domain.Image, error)
	FindByID(ctx context.Context, id int64) (*domain.Image, error)
	// Delete returns domain.ErrImageNotFound when no such image exists;
	// idempotence is the service's concern.
	Delete(ctx context.Context, id int64) error
}
