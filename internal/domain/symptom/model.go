// Package symptom holds patient-submitted symptom reports and the triage
// mapping from symptom severity to a recommendation.
package symptom

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendations.
const (
	RecommendEmergency = "emergency"
	RecommendSeeGP     = "see-gp"
	RecommendSelfCare  = "self-care"
)

// Urgency levels.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// Symptom is one reported symptom with a severity on a 1-10 scale.
type Symptom struct {
	Name     string `bson:"name" json:"name"`
	Severity int    `bson:"severity" json:"severity"`
}

// Report is a patient's symptom submission. Recommendation and UrgencyLevel
// are derived from the maximum severity, never set independently.
type Report struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID      primitive.ObjectID `bson:"patientId" json:"patient_id"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	Symptoms       []Symptom          `bson:"symptoms" json:"symptoms"`
	Recommendation string             `bson:"recommendation" json:"recommendation"`
	UrgencyLevel   string             `bson:"urgencyLevel" json:"urgency_level"`
}

// Triage maps the maximum reported severity to a recommendation and urgency
// level. Bands are evaluated high to low; the highest matching band wins.
func Triage(maxSeverity int) (recommendation, urgency string) {
	switch {
	case maxSeverity >= 8:
		return RecommendEmergency, UrgencyCritical
	case maxSeverity >= 6:
		return RecommendSeeGP, UrgencyHigh
	case maxSeverity >= 4:
		return RecommendSeeGP, UrgencyMedium
	default:
		return RecommendSelfCare, UrgencyLow
	}
}

// MaxSeverity returns the highest severity among the report's symptoms, or 0
// for an empty list.
func (r *Report) MaxSeverity() int {
	max := 0
	for _, s := range r.Symptoms {
		if s.Severity > max {
			max = s.Severity
		}
	}
	return max
}
