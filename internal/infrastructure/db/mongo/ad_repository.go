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

const adsCollection = "ads"

// AdRepository implements ports.AdRepository on MongoDB.
type AdRepository struct {
	coll *mongo.Collection
}

func NewAdRepository(db *mongo.Database) *AdRepository {
	return &AdRepository{coll: db.Collection(adsCollection)}
}

type adDoc struct {
	ID          int64  `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Price       int    `bson:"price"`
	AuthorID    int64  `bson:"author_id"`
	ImageID     int64  `bson:"image_id,omitempty"`
}

func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.coll.Database(), "ads")
	if err != nil {
		return nil, err
	}

	doc := toAdDoc(ad)
	doc.ID = id

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert ad: %w", err)
	}

	return fromAdDoc(doc), nil
}

func (r *AdRepository) FindByID(ctx context.Context, id int64) (*domain.Ad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdNotFound
		}
		return nil, fmt.Errorf("find ad: %w", err)
	}

	return fromAdDoc(doc), nil
}

func (r *AdRepository) FindAll(ctx context.Context) ([]*domain.Ad, error) {
	return r.find(ctx, bson.M{})
}

func (r *AdRepository) FindAllByAuthor(ctx context.Context, authorID int64) ([]*domain.Ad, error) {
	return r.find(ctx, bson.M{"author_id": authorID})
}

func (r *AdRepository) find(ctx context.Context, filter bson.M) ([]*domain.Ad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []adDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode ads: %w", err)
	}

	ads := make([]*domain.Ad, len(docs))
	for i, doc := range docs {
		ads[i] = fromAdDoc(doc)
	}
	return ads, nil
}

func (r *AdRepository) Update(ctx context.Context, ad *domain.Ad) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toAdDoc(ad)
	doc.ID = ad.ID

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ad.ID}, doc)
	if err != nil {
		return fmt.Errorf("update ad: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAdNotFound
	}
	return nil
}

// EnsureIndexes creates the author lookup index used by listMine.
func (r *AdRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{Keys: bson.D{{Key: "author_id", Value: 1}}}
	_, err := r.coll.Indexes().CreateOne(ctx, index)
	return err
}

func toAdDoc(ad *domain.Ad) adDoc {
	return adDoc{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		AuthorID:    ad.AuthorID,
		ImageID:     ad.ImageID,
	}
}

func fromAdDoc(doc adDoc) *domain.Ad {
	return &domain.Ad{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		AuthorID:    doc.AuthorID,
		ImageID:     doc.ImageID,
	}
}
