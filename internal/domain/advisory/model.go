// Package advisory holds provider-authored guidance for assigned patients.
package advisory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusActive   = "active"
	StatusResolved = "resolved"
)

// Advisory is a note from a provider to one of their assigned patients.
// AcknowledgedAt is set exactly when Status is resolved.
type Advisory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProviderID       primitive.ObjectID `bson:"providerId" json:"provider_id"`
	PatientID        primitive.ObjectID `bson:"patientId" json:"patient_id"`
	Text             string             `bson:"text" json:"text"`
	Tags             []string           `bson:"tags" json:"tags"`
	Status           string             `bson:"status" json:"status"`
	VisibleToPatient bool               `bson:"visibleToPatient" json:"visible_to_patient"`
	AcknowledgedAt   *time.Time         `bson:"acknowledgedAt,omitempty" json:"acknowledged_at,omitempty"`
	ExpiresAt        time.Time          `bson:"expiresAt" json:"expires_at"`
}
