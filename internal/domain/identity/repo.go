package identity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type ProviderRepository interface {
	Create(ctx context.Context, p *Provider) error
	// AppendPatient adds a patient id to the provider's assigned list. The
	// append is atomic at the document level.
	AppendPatient(ctx context.Context, providerID, patientID primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	// ListByProvider returns the patients whose assignedProvider matches.
	ListByProvider(ctx context.Context, providerID primitive.ObjectID) ([]*Patient, error)
	DeleteAll(ctx context.Context) error
}
