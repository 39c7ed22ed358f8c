package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// AdService implements the ad lifecycle: creation, listing, edits, image
// replacement and cascading deletion. Every mutation is gated on the
// ownership predicate after the record is known to exist.
type AdService struct {
	ads      ports.AdRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	images   ports.ImageService
	logger   zerolog.Logger
}

func NewAdService(ads ports.AdRepository, comments ports.CommentRepository, users ports.UserRepository, images ports.ImageService, logger zerolog.Logger) *AdService {
	return &AdService{ads: ads, comments: comments, users: users, images: images, logger: logger}
}

// Create stores the ad's image, then the ad itself with the caller as its
// author. The author is fixed at creation and never reassigned.
func (s *AdService) Create(ctx context.Context, identity domain.Identity, input ports.CreateAdInput) (*ports.AdSummary, error) {
	if isBlank(input.Title) || isBlank(input.Description) || input.Price < 0 {
		return nil, domain.ErrInvalidArgument
	}

	var imageID int64
	if len(input.ImageData) > 0 {
		stored, err := s.images.Store(ctx, input.ImageData, input.ImageMediaType)
		if err != nil {
			return nil, err
		}
		imageID = stored.ID
	}

	ad := &domain.Ad{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		AuthorID:    identity.ID,
		ImageID:     imageID,
	}

	created, err := s.ads.Create(ctx, ad)
	if err != nil {
		if imageID != 0 {
			// the ad never existed, so the blob has no owner
			_ = s.images.Remove(ctx, imageID)
		}
		return nil, err
	}

	s.logger.Info().Int64("ad_id", created.ID).Int64("author_id", identity.ID).Msg("ad created")
	return toSummary(created), nil
}

// List returns all ads.
func (s *AdService) List(ctx context.Context) ([]ports.AdSummary, error) {
	ads, err := s.ads.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaries(ads), nil
}

// GetFull returns the ad enriched with its author's contact details.
func (s *AdService) GetFull(ctx context.Context, adID int64) (*ports.AdDetail, error) {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, ad.AuthorID)
	if err != nil {
		return nil, err
	}

	return &ports.AdDetail{
		ID:              ad.ID,
		Title:           ad.Title,
		Description:     ad.Description,
		Price:           ad.Price,
		ImageID:         ad.ImageID,
		AuthorID:        author.ID,
		AuthorFirstName: author.FirstName,
		AuthorLastName:  author.LastName,
		AuthorPhone:     author.Phone,
		Email:           author.Username,
	}, nil
}

// Update applies new title, description and price. The author and image are
// untouched.
func (s *AdService) Update(ctx context.Context, identity domain.Identity, adID int64, input ports.UpdateAdInput) (*ports.AdSummary, error) {
	if isBlank(input.Title) || isBlank(input.Description) || input.Price < 0 {
		return nil, domain.ErrInvalidArgument
	}

	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if !identity.CanMutate(ad.AuthorID) {
		return nil, domain.ErrForbidden
	}

	ad.Title = input.Title
	ad.Description = input.Description
	ad.Price = input.Price

	if err := s.ads.Update(ctx, ad); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("ad_id", ad.ID).Msg("ad updated")
	return toSummary(ad), nil
}

// UpdateImage replaces the ad's picture: the new blob is stored first, the
// ad's reference is swapped, and only then is the old blob deleted. A failed
// upload leaves the old image and its link unchanged.
func (s *AdService) UpdateImage(ctx context.Context, identity domain.Identity, adID int64, data []byte, mediaType string) error {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		return err
	}
	if !identity.CanMutate(ad.AuthorID) {
		return domain.ErrForbidden
	}

	stored, err := s.images.Store(ctx, data, mediaType)
	if err != nil {
		return err
	}

	oldImageID := ad.ImageID
	ad.ImageID = stored.ID
	if err := s.ads.Update(ctx, ad); err != nil {
		_ = s.images.Remove(ctx, stored.ID)
		return err
	}

	if oldImageID != 0 {
		if err := s.images.Remove(ctx, oldImageID); err != nil {
			s.logger.Warn().Err(err).Int64("image_id", oldImageID).Msg("failed to remove replaced ad image")
		}
	}

	s.logger.Info().Int64("ad_id", ad.ID).Int64("image_id", stored.ID).Msg("ad image updated")
	return nil
}

// Delete removes the ad's comments, then its image, then the ad itself.
// Comments and image go first so no row ever references a deleted ad.
func (s *AdService) Delete(ctx context.Context, identity domain.Identity, adID int64) error {
	ad, err := s.ads.FindByID(ctx, adID)
	if err != nil {
		return err
	}
	if !identity.CanMutate(ad.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.comments.DeleteAllByAd(ctx, ad.ID); err != nil {
		return err
	}
	if ad.ImageID != 0 {
		if err := s.images.Remove(ctx, ad.ImageID); err != nil {
			return err
		}
	}
	if err := s.ads.Delete(ctx, ad.ID); err != nil {
		return err
	}

	s.logger.Info().Int64("ad_id", ad.ID).Msg("ad removed")
	return nil
}

// ListMine returns the ads authored by the caller.
func (s *AdService) ListMine(ctx context.Context, identity domain.Identity) ([]ports.AdSummary, error) {
	ads, err := s.ads.FindAllByAuthor(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return toSummaries(ads), nil
}

func toSummary(ad *domain.Ad) *ports.AdSummary {
	return &ports.AdSummary{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		AuthorID:    ad.AuthorID,
		ImageID:     ad.ImageID,
	}
}

func toSummaries(ads []*domain.Ad) []ports.AdSummary {
	out := make([]ports.AdSummary, len(ads))
	for i, ad := range ads {
		out[i] = *toSummary(ad)
	}
	return out
}
