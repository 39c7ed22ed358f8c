package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// --- users ---

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

// --- ads ---

type stubAdRepo struct {
	nextID int64
	ads    map[int64]*domain.Ad
}

func newStubAdRepo() *stubAdRepo {
	return &stubAdRepo{ads: make(map[int64]*domain.Ad)}
}

func cloneAd(a *domain.Ad) *domain.Ad {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdRepo) Create(_ context.Context, ad *domain.Ad) (*domain.Ad, error) {
	r.nextID++
	copy := cloneAd(ad)
	copy.ID = r.nextID
	r.ads[copy.ID] = cloneAd(copy)
	return copy, nil
}

func (r *stubAdRepo) FindByID(_ context.Context, id int64) (*domain.Ad, error) {
	a, ok := r.ads[id]
	if !ok {
		return nil, domain.ErrAdNotFound
	}
	return cloneAd(a), nil
}

func (r *stubAdRepo) FindAll(_ context.Context) ([]*domain.Ad, error) {
	out := make([]*domain.Ad, 0, len(r.ads))
	for _, a := range r.ads {
		out = append(out, cloneAd(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAdRepo) FindAllByAuthor(_ context.Context, authorID int64) ([]*domain.Ad, error) {
	out := make([]*domain.Ad, 0)
	for _, a := range r.ads {
		if a.AuthorID == authorID {
			out = append(out, cloneAd(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAdRepo) Update(_ context.Context, ad *domain.Ad) error {
	if _, ok := r.ads[ad.ID]; !ok {
		return domain.ErrAdNotFound
	}
	r.ads[ad.ID] = cloneAd(ad)
	return nil
}

func (r *stubAdRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.ads[id]; !ok {
		return domain.ErrAdNotFound
	}
	delete(r.ads, id)
	return nil
}

// --- comments ---

type stubCommentRepo struct {
	nextID   int64
	comments map[int64]*domain.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[int64]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	copy := cloneComment(comment)
	copy.ID = r.nextID
	r.comments[copy.ID] = cloneComment(copy)
	return copy, nil
}

func (r *stubCommentRepo) FindByAdAndID(_ context.Context, adID, commentID int64) (*domain.Comment, error) {
	c, ok := r.comments[commentID]
	if !ok || c.AdID != adID {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) FindAllByAd(_ context.Context, adID int64) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0)
	for _, c := range r.comments {
		if c.AdID == adID {
			out = append(out, cloneComment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	existing, ok := r.comments[comment.ID]
	if !ok || existing.AdID != comment.AdID {
		return domain.ErrCommentNotFound
	}
	r.comments[comment.ID] = cloneComment(comment)
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, adID, commentID int64) error {
	c, ok := r.comments[commentID]
	if !ok || c.AdID != adID {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, commentID)
	return nil
}

func (r *stubCommentRepo) DeleteAllByAd(_ context.Context, adID int64) error {
	for id, c := range r.comments {
		if c.AdID == adID {
			delete(r.comments, id)
		}
	}
	return nil
}

// --- images ---

var errStubStorage = errors.New("stub storage failure")

type stubImageRepo struct {
	nextID     int64
	images     map[int64]*domain.Image
	failCreate bool
}

func newStubImageRepo() *stubImageRepo {
	return &stubImageRepo{images: make(map[int64]*domain.Image)}
}

func cloneImage(img *domain.Image) *domain.Image {
	if img == nil {
		return nil
	}
	clone := *img
	clone.Data = append([]byte(nil), img.Data...)
	return &clone
}

func (r *stubImageRepo) Create(_ context.Context, image *domain.Image) (*domain.Image, error) {
	if r.failCreate {
		return nil, errStubStorage
	}
	r.nextID++
	copy := cloneImage(image)
	copy.ID = r.nextID
	r.images[copy.ID] = cloneImage(copy)
	return copy, nil
}

func (r *stubImageRepo) FindByID(_ context.Context, id int64) (*domain.Image, error) {
	img, ok := r.images[id]
	if !ok {
		return nil, domain.ErrImageNotFound
	}
	return cloneImage(img), nil
}

func (r *stubImageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.images[id]; !ok {
		return domain.ErrImageNotFound
	}
	delete(r.images, id)
	return nil
}

// --- revoker ---

type stubRevoker struct {
	revoked map[int64]time.Time
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[int64]time.Time)}
}

func (r *stubRevoker) RevokeOlderThan(_ context.Context, userID int64, t time.Time) error {
	r.revoked[userID] = t
	return nil
}
