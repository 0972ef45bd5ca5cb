package identity

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepoMongo struct {
	col *mongo.Collection
}

func NewUserRepoMongo(db *mongo.Database) *UserRepoMongo {
	return &UserRepoMongo{col: db.Collection("users")}
}

func (r *UserRepoMongo) Create(ctx context.Context, u *User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepoMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}

type ProviderRepoMongo struct {
	col *mongo.Collection
}

func NewProviderRepoMongo(db *mongo.Database) *ProviderRepoMongo {
	return &ProviderRepoMongo{col: db.Collection("providers")}
}

func (r *ProviderRepoMongo) Create(ctx context.Context, p *Provider) error {
	if p.Patients == nil {
		p.Patients = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ProviderRepoMongo) AppendPatient(ctx context.Context, providerID, patientID primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": providerID},
		bson.M{"$push": bson.M{"patients": patientID}},
	)
	if err != nil {
		return fmt.Errorf("append patient to provider: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("append patient to provider: provider %s not found", providerID.Hex())
	}
	return nil
}

func (r *ProviderRepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete providers: %w", err)
	}
	return nil
}

type PatientRepoMongo struct {
	col *mongo.Collection
}

func NewPatientRepoMongo(db *mongo.Database) *PatientRepoMongo {
	return &PatientRepoMongo{col: db.Collection("patients")}
}

func (r *PatientRepoMongo) Create(ctx context.Context, p *Patient) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PatientRepoMongo) ListByProvider(ctx context.Context, providerID primitive.ObjectID) ([]*Patient, error) {
	cur, err := r.col.Find(ctx, bson.M{"assignedProvider": providerID})
	if err != nil {
		return nil, fmt.Errorf("find patients by provider: %w", err)
	}
	defer cur.Close(ctx)

	var patients []*Patient
	if err := cur.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (r *PatientRepoMongo) DeleteAll(ctx context.Context) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete patients: %w", err)
	}
	return nil
}
