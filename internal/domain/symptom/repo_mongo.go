package symptom

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
	return &RepoMongo{col: db.Collection("symptomreports")}
}

func (r *RepoMongo) Create(ctx context.Context, rep *Report) error {
	res, err := r.col.InsertOne(ctx, rep)
	if err != nil {
		return fmt.Errorf("insert symptom report: %w", err)
	}
	rep.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete symptom reports: %w", err)
	}
	return nil
}
