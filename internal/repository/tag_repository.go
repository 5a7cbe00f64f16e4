package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipebox/internal/model"
)

const tagsCollection = "tags"

// TagRepository defines persistence operations.
type TagRepository interface {
	List(ctx context.Context) ([]model.Tag, error)
	Create(ctx context.Context, tag *model.Tag) (primitive.ObjectID, error)
}

type tagRepository struct {
	coll *mongo.Collection
}

// NewTagRepository builds a MongoDB-backed repository.
func NewTagRepository(db *mongo.Database) TagRepository {
	return &tagRepository{coll: db.Collection(tagsCollection)}
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}

	tags := []model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, tag)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert tag: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
