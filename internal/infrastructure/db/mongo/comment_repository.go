package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

const commentsCollection = "comments"

// CommentRepository implements ports.CommentRepository on MongoDB.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID        int64     `bson:"_id"`
	AdID      int64     `bson:"ad_id"`
	AuthorID  int64     `bson:"author_id"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.coll.Database(), "comments")
	if err != nil {
		return nil, err
	}

	doc := toCommentDoc(comment)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return fromCommentDoc(doc), nil
}

func (r *CommentRepository) FindByAdAndID(ctx context.Context, adID, commentID int64) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": commentID, "ad_id": adID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}

	return fromCommentDoc(doc), nil
}

// FindAllByAd returns the ad's comments ordered by creation time ascending.
func (r *CommentRepository) FindAllByAd(ctx context.Context, adID int64) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ad_id": adID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []commentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]*domain.Comment, len(docs))
	for i, doc := range docs {
		comments[i] = fromCommentDoc(doc)
	}
	return comments, nil
}

// Update persists the comment's text. The immutable fields are part of the
// filter, so a document can never migrate to another ad or author.
func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": comment.ID, "ad_id": comment.AdID}
	update := bson.M{"$set": bson.M{"text": comment.Text}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, adID, commentID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": commentID, "ad_id": adID})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteAllByAd removes every comment of an ad (ad deletion cascade).
func (r *CommentRepository) DeleteAllByAd(ctx context.Context, adID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"ad_id": adID}); err != nil {
		return fmt.Errorf("delete comments of ad %d: %w", adID, err)
	}
	return nil
}

// EnsureIndexes creates the parent-ad lookup index that also backs the
// creation-order listing.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys: bson.D{{Key: "ad_id", Value: 1}, {Key: "created_at", Value: 1}},
	}
	_, err := r.coll.Indexes().CreateOne(ctx, index)
	return err
}

func toCommentDoc(c *domain.Comment) commentDoc {
	return commentDoc{
		ID:        c.ID,
		AdID:      c.AdID,
		AuthorID:  c.AuthorID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func fromCommentDoc(doc commentDoc) *domain.Comment {
	return &domain.Comment{
		ID:        doc.ID,
		AdID:      doc.AdID,
		AuthorID:  doc.AuthorID,
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt.UTC(),
	}
}
