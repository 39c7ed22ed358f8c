package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

const imagesCollection = "images"

// ImageRepository implements ports.ImageRepository on MongoDB, storing the
// payload inline as BSON binary next to its metadata.
type ImageRepository struct {
	coll *mongo.Collection
}

func NewImageRepository(db *mongo.Database) *ImageRepository {
	return &ImageRepository{coll: db.Collection(imagesCollection)}
}

type imageDoc struct {
	ID        int64            `bson:"_id"`
	MediaType string           `bson:"media_type"`
	Size      int64            `bson:"size"`
	Data      primitive.Binary `bson:"data"`
}

func (r *ImageRepository) Create(ctx context.Context, image *domain.Image) (*domain.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.coll.Database(), "images")
	if err != nil {
		return nil, err
	}

	doc := imageDoc{
		ID:        id,
		MediaType: image.MediaType,
		Size:      image.Size,
		Data:      primitive.Binary{Data: image.Data},
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert image: %w", err)
	}

	return fromImageDoc(doc), nil
}

func (r *ImageRepository) FindByID(ctx context.Context, id int64) (*domain.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc imageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("find image: %w", err)
	}

	return fromImageDoc(doc), nil
}

func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

func fromImageDoc(doc imageDoc) *domain.Image {
	return &domain.Image{
		ID:        doc.ID,
		MediaType: doc.MediaType,
		Size:      doc.Size,
		Data:      doc.Data.Data,
	}
}
