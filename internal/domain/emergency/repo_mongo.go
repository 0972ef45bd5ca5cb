package emergency

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepoMongo struct {
	col *mongo.Collection
}

func NewRepoMongo(db *mongo.Database) *RepoMongo {
	return &RepoMongo{col: db.Collection("emergencycards")}
}

func (r *RepoMongo) Create(ctx context.Context, c *Card) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert emergency card: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete emergency cards: %w", err)
	}
	return nil
}
