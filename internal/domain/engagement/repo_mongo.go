package engagement

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReminderRepoMongo struct {
	col *mongo.Collection
}

func NewReminderRepoMongo(db *mongo.Database) *ReminderRepoMongo {
	return &ReminderRepoMongo{col: db.Collection("reminders")}
}

func (r *ReminderRepoMongo) Create(ctx context.Context, rem *Reminder) error {
	res, err := r.col.InsertOne(ctx, rem)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	rem.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ReminderRepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	return nil
}

type AdherenceRepoMongo struct {
	col *mongo.Collection
}

func NewAdherenceRepoMongo(db *mongo.Database) *AdherenceRepoMongo {
	return &AdherenceRepoMongo{col: db.Collection("adherences")}
}

func (r *AdherenceRepoMongo) Create(ctx context.Context, a *Adherence) error {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert adherence: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AdherenceRepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete adherence records: %w", err)
	}
	return nil
}
