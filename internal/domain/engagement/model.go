// Package engagement holds patient-facing reminders and the adherence log
// recording whether each scheduled reminder was acted on.
package engagement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder types.
const (
	TypeMedication = "medication"
	TypeWater      = "water"
)

// Adherence statuses.
const (
	StatusTaken  = "taken"
	StatusMissed = "missed"
)

// Schedule is the set of times of day a reminder fires, each in 24-hour
// HH:MM form.
type Schedule struct {
	Times []string `bson:"times" json:"times"`
}

type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID primitive.ObjectID `bson:"patientId" json:"patient_id"`
	Type      string             `bson:"type" json:"type"`
	Text      string             `bson:"text" json:"text"`
	Schedule  Schedule           `bson:"schedule" json:"schedule"`
	Enabled   bool               `bson:"enabled" json:"enabled"`
}

type Adherence struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReminderID primitive.ObjectID `bson:"reminderId" json:"reminder_id"`
	PatientID  primitive.ObjectID `bson:"patientId" json:"patient_id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Status     string             `bson:"status" json:"status"`
}
