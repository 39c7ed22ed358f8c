package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// AdRepository defines persistence operations for ads.
type AdRepository interface {
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	FindByID(ctx context.Context, id int64) (*domain.Ad, error)
	FindAll(ctx context.Context) ([]*domain.Ad, error)
	FindAllByAuthor(ctx context.Context, authorID int64) ([]*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) error
	Delete(ctx context.Context, id int64) error
}
