// Package wellness holds daily self-tracked health entries.
package wellness

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is one day of tracked activity for a patient. Date carries day
// granularity only, with the time-of-day zeroed.
type Entry struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID                 primitive.ObjectID `bson:"patientId" json:"patient_id"`
	Date                      time.Time          `bson:"date" json:"date"`
	Steps                     int                `bson:"steps" json:"steps"`
	SleepHours                float64            `bson:"sleepHours" json:"sleep_hours"`
	WaterIntake               int                `bson:"waterIntake" json:"water_intake"`
	PreventiveComplianceScore int                `bson:"preventiveComplianceScore" json:"preventive_compliance_score"`
}
