package ports

import (
	"context"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// CreateAdInput carries a new ad plus its attached picture.
type CreateAdInput struct {
	Title          string
	Description    string
	Price          int
	ImageData      []byte
	ImageMediaType string
}

// UpdateAdInput carries the mutable ad fields. All are required; the author
// and image are never touched by Update.
type UpdateAdInput struct {
	Title       string
	Description string
	Price       int
}

// AdSummary is the list/create projection of an ad.
type AdSummary struct {
	ID          int64
	Title       string
	Description string
	Price       int
	AuthorID    int64
	ImageID     int64 // 0 = no image
}

// AdDetail is the author-enriched projection returned for a single ad.
type AdDetail struct {
	ID              int64
	Title           string
	Description     string
	Price           int
	ImageID         int64
	AuthorID        int64
	AuthorFirstName string
	AuthorLastName  string
	AuthorPhone     string
	// Email is the author's username (accounts register with an e-mail
	// address as the login).
	Email string
}

// AdService defines the ad lifecycle use cases.
type AdService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateAdInput) (*AdSummary, error)
	List(ctx context.Context) ([]AdSummary, error)
	GetFull(ctx context.Context, adID int64) (*AdDetail, error)
	Update(ctx context.Context, identity domain.Identity, adID int64, input UpdateAdInput) (*AdSummary, error)
	UpdateImage(ctx context.Context, identity domain.Identity, adID int64, data []byte, mediaType string) error
	// Delete removes the ad, its comments and its image. Comments go first,
	// then the image, then the ad itself, so no dangling reference is ever
	// observable.
	Delete(ctx context.Context, identity domain.Identity, adID int64) error
	ListMine(ctx context.Context, identity domain.Identity) ([]AdSummary, error)
}
