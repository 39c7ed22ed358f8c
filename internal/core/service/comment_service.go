package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
	"github.com/skymarket/classifieds-api/internal/core/ports"
)

// CommentService implements comment use cases, always scoped to a parent ad.
type CommentService struct {
	comments ports.CommentRepository
	ads      ports.AdRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, ads ports.AdRepository, users ports.UserRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, ads: ads, users: users, logger: logger}
}

// List returns the ad's comments in creation order, author-enriched.
func (s *CommentService) List(ctx context.Context, adID int64) ([]ports.CommentView, error) {
	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindAllByAd(ctx, adID)
	if err != nil {
		return nil, err
	}

	// author names, fetched once per distinct author
	names := make(map[int64]string)
	views := make([]ports.CommentView, len(comments))
	for i, c := range comments {
		name, ok := names[c.AuthorID]
		if !ok {
			author, err := s.users.FindByID(ctx, c.AuthorID)
			if err != nil {
				return nil, err
			}
			name = author.FirstName
			names[c.AuthorID] = name
		}
		views[i] = toView(c, name)
	}
	return views, nil
}

// Add creates a comment on an existing ad. The author is re-fetched from the
// store rather than trusted from the token, so the identity does not need to
// be a full user record.
func (s *CommentService) Add(ctx context.Context, identity domain.Identity, adID int64, text string) (*ports.CommentView, error) {
	if isBlank(text) {
		return nil, domain.ErrInvalidArgument
	}

	if _, err := s.ads.FindByID(ctx, adID); err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		AdID:      adID,
		AuthorID:  author.ID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("comment_id", created.ID).Int64("ad_id", adID).Msg("comment added")
	view := toView(created, author.FirstName)
	return &view, nil
}

// Update changes a comment's text. Only the text is mutable.
func (s *CommentService) Update(ctx context.Context, identity domain.Identity, adID, commentID int64, text string) (*ports.CommentView, error) {
	if isBlank(text) {
		return nil, domain.ErrInvalidArgument
	}

	comment, err := s.comments.FindByAdAndID(ctx, adID, commentID)
	if err != nil {
		return nil, err
	}
	if !identity.CanMutate(comment.AuthorID) {
		return nil, domain.ErrForbidden
	}

	comment.Text = text
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("comment_id", comment.ID).Msg("comment updated")
	view := toView(comment, author.FirstName)
	return &view, nil
}

// Delete removes a single comment.
func (s *CommentService) Delete(ctx context.Context, identity domain.Identity, adID, commentID int64) error {
	comment, err := s.comments.FindByAdAndID(ctx, adID, commentID)
	if err != nil {
		return err
	}
	if !identity.CanMutate(comment.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, adID, commentID); err != nil {
		return err
	}

	s.logger.Info().Int64("comment_id", commentID).Int64("ad_id", adID).Msg("comment removed")
	return nil
}

func toView(c *domain.Comment, authorFirstName string) ports.CommentView {
	return ports.CommentView{
		ID:              c.ID,
		AdID:            c.AdID,
		AuthorID:        c.AuthorID,
		AuthorFirstName: authorFirstName,
		Text:            c.Text,
		CreatedAt:       c.CreatedAt,
	}
}
