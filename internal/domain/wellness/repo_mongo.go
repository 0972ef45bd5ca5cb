package wellness

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepoMongo struct {
	col *mongo.Collection
}

func NewRepoMongo(db *mongo.Database) *RepoMongo {
	return &RepoMongo{col: db.Collection("wellnessentries")}
}

func (r *RepoMongo) Create(ctx context.Context, e *Entry) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert wellness entry: %w", err)
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete wellness entries: %w", err)
	}
	return nil
}
