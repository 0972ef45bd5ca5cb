// Package emergency holds the shareable emergency card attached to a
// patient.
package emergency

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card exposes a patient's critical information for emergency access.
// IsPublic controls whether the card is reachable without authentication.
type Card struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID primitive.ObjectID `bson:"patientId" json:"patient_id"`
	IsPublic  bool               `bson:"isPublic" json:"is_public"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
