package preventive

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RepoMongo struct {
	col *mongo.Collection
}

func NewRepoMongo(db *mongo.Database) *RepoMongo {
	return &RepoMongo{col: db.Collection("preventiverules")}
}

func (r *RepoMongo) InsertMany(ctx context.Context, rules []*Rule) error {
	docs := make([]interface{}, 0, len(rules))
	for _, rule := range rules {
		docs = append(docs, rule)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert rules: %w", err)
	}
	return nil
}

func (r *RepoMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count rules: %w", err)
	}
	return n, nil
}

func (r *RepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete rules: %w", err)
	}
	return nil
}
