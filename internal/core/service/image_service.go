package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// ImageService owns the blob lifecycle for ad pictures and avatars.
type ImageService struct {
	images ports.ImageRepository
	logger zerolog.Logger
}

func NewImageService(images ports.ImageRepository, logger zerolog.Logger) *ImageService {
	return &ImageService{images: images, logger: logger}
}

// Store persists a new blob and returns it with its assigned id. Size and
// media type are recorded as supplied; the payload is not transformed.
func (s *ImageService) Store(ctx context.Context, data []byte, mediaType string) (*domain.Image, error) {
	if len(data) == 0 || isBlank(mediaType) {
		return nil, domain.ErrInvalidArgument
	}

	image := &domain.Image{
		MediaType: mediaType,
		Size:      int64(len(data)),
		Data:      data,
	}

	stored, err := s.images.Create(ctx, image)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("image_id", stored.ID).Int64("size", stored.Size).Msg("image stored")
	return stored, nil
}

// Fetch returns the raw bytes and media type for direct streaming.
func (s *ImageService) Fetch(ctx context.Context, imageID int64) (*domain.Image, error) {
	return s.images.FindByID(ctx, imageID)
}

// Remove deletes the blob. Removing an image that is already gone is a no-op,
// so callers can clean up references without a prior existence check.
func (s *ImageService) Remove(ctx context.Context, imageID int64) error {
	err := s.images.Delete(ctx, imageID)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil
		}
		return err
	}

	s.logger.Debug().Int64("image_id", imageID).Msg("image removed")
	return nil
}
