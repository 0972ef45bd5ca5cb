package advisory

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
	return &RepoMongo{col: db.Collection("advisories")}
}

func (r *RepoMongo) Create(ctx context.Context, a *Advisory) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert advisory: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete advisories: %w", err)
	}
	return nil
}
