package seed

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellness/wellness/internal/domain/advisory"
	"github.com/wellness/wellness/internal/domain/emergency"
	"github.com/wellness/wellness/internal/domain/engagement"
	"github.com/wellness/wellness/internal/domain/identity"
	"github.com/wellness/wellness/internal/domain/symptom"
	"github.com/wellness/wellness/internal/domain/wellness"
)

// defaultPassword is the shared credential for synthetic accounts. The
// identity layer hashes it before anything reaches the store.
const defaultPassword = "password123"

// Generator produces unpersisted entity values from an injected randomness
// source. Generators perform no I/O; foreign keys are supplied by the
// caller.
//
// Email uniqueness relies on the generator's own monotonically increasing
// index, so one Generator must be used for a whole seeding run.
type Generator struct {
	rand       *Rand
	emailIndex int
}

func NewGenerator(r *Rand) *Generator {
	return &Generator{rand: r}
}

func (g *Generator) nextEmailIndex() int {
	i := g.emailIndex
	g.emailIndex++
	return i
}

// User synthesizes a platform account with the given role.
func (g *Generator) User(role string) *identity.User {
	first := Choice(g.rand, firstNames)
	last := Choice(g.rand, lastNames)
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last),
		g.nextEmailIndex(), Choice(g.rand, emailDomains))

	return &identity.User{
		Email:        email,
		Password:     defaultPassword,
		Role:         role,
		Name:         first + " " + last,
		ConsentGiven: true,
	}
}

// Provider synthesizes a provider profile for the given user.
func (g *Generator) Provider(userID primitive.ObjectID) *identity.Provider {
	return &identity.Provider{
		UserID:         userID,
		Specialization: Choice(g.rand, specializations),
		LicenseNumber:  fmt.Sprintf("MD%06d", g.rand.IntBetween(100000, 999999)),
		Patients:       []primitive.ObjectID{},
	}
}

// Patient synthesizes a full patient profile for the given user, optionally
// assigned to a provider.
func (g *Generator) Patient(userID primitive.ObjectID, providerID *primitive.ObjectID) *identity.Patient {
	lastTests := make([]identity.TestRecord, g.rand.IntBetween(1, 4))
	for i := range lastTests {
		lastTests[i] = identity.TestRecord{
			Type: Choice(g.rand, testTypes),
			Date: g.rand.PastDate(g.rand.IntBetween(30, 365)),
		}
	}

	imms := make([]identity.Immunization, g.rand.IntBetween(1, 3))
	for i := range imms {
		imms[i] = identity.Immunization{
			Name: Choice(g.rand, immunizations),
			Date: g.rand.PastDate(g.rand.IntBetween(30, 1825)),
		}
	}

	return &identity.Patient{
		UserID:      userID,
		DOB:         g.dateOfBirth(),
		Sex:         Choice(g.rand, sexes),
		BloodGroup:  Choice(g.rand, bloodGroups),
		Allergies:   Choices(g.rand, allergies, g.rand.IntBetween(0, 3)),
		Medications: Choices(g.rand, medications, g.rand.IntBetween(0, 3)),
		Conditions:  Choices(g.rand, conditions, g.rand.IntBetween(0, 2)),
		LastTests:   lastTests,
		Immunizations: imms,
		EmergencyContact: identity.EmergencyContact{
			Name:         Choice(g.rand, firstNames) + " " + Choice(g.rand, lastNames),
			Phone:        g.phone(),
			Relationship: Choice(g.rand, relationships),
		},
		AssignedProvider: providerID,
	}
}

// dateOfBirth yields an age of 18-80 years at generation time. The day of
// month is capped at 28 to avoid month-length edge cases; this narrows the
// birthday distribution slightly and is a deliberate simplification.
func (g *Generator) dateOfBirth() time.Time {
	age := g.rand.IntBetween(18, 80)
	now := time.Now()
	return time.Date(now.Year()-age, time.Month(g.rand.IntBetween(1, 12)),
		g.rand.IntBetween(1, 28), 0, 0, 0, 0, time.UTC)
}

func (g *Generator) phone() string {
	return fmt.Sprintf("%d-%d-%d",
		g.rand.IntBetween(200, 999),
		g.rand.IntBetween(200, 999),
		g.rand.IntBetween(1000, 9999))
}

// WellnessEntry synthesizes one tracked day, daysAgo days before today, with
// the time-of-day zeroed.
func (g *Generator) WellnessEntry(patientID primitive.ObjectID, daysAgo int) *wellness.Entry {
	day := time.Now().AddDate(0, 0, -daysAgo)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	// One decimal place, in [5.0, 10.0)
	sleep := float64(g.rand.IntBetween(5, 9)) + g.rand.Float64()
	sleep = float64(int(sleep*10)) / 10

	return &wellness.Entry{
		PatientID:                 patientID,
		Date:                      date,
		Steps:                     g.rand.IntBetween(2000, 12000),
		SleepHours:                sleep,
		WaterIntake:               g.rand.IntBetween(1000, 3000),
		PreventiveComplianceScore: g.rand.IntBetween(20, 30),
	}
}

// Reminder synthesizes a reminder whose text pool matches its type and whose
// schedule holds 1-3 times of day.
func (g *Generator) Reminder(patientID primitive.ObjectID) *engagement.Reminder {
	kind := Choice(g.rand, []string{engagement.TypeMedication, engagement.TypeWater})
	pool := medicationReminderTexts
	if kind == engagement.TypeWater {
		pool = waterReminderTexts
	}

	times := make([]string, g.rand.IntBetween(1, 3))
	for i := range times {
		times[i] = g.rand.ClockTime()
	}

	return &engagement.Reminder{
		PatientID: patientID,
		Type:      kind,
		Text:      Choice(g.rand, pool),
		Schedule:  engagement.Schedule{Times: times},
		Enabled:   g.rand.Bool(0.8),
	}
}

// Adherence synthesizes an adherence record for a reminder, timestamped
// within the last week and biased toward taken.
func (g *Generator) Adherence(reminderID, patientID primitive.ObjectID) *engagement.Adherence {
	status := engagement.StatusMissed
	if g.rand.Bool(0.8) {
		status = engagement.StatusTaken
	}
	return &engagement.Adherence{
		ReminderID: reminderID,
		PatientID:  patientID,
		Timestamp:  g.rand.PastDate(7),
		Status:     status,
	}
}

// Advisory synthesizes an advisory from a provider to one of its patients.
// AcknowledgedAt is populated exactly when the status comes out resolved.
func (g *Generator) Advisory(providerID, patientID primitive.ObjectID) *advisory.Advisory {
	status := Choice(g.rand, []string{advisory.StatusActive, advisory.StatusResolved})

	var acknowledgedAt *time.Time
	if status == advisory.StatusResolved {
		ts := g.rand.PastDate(g.rand.IntBetween(1, 30))
		acknowledgedAt = &ts
	}

	return &advisory.Advisory{
		ProviderID:       providerID,
		PatientID:        patientID,
		Text:             Choice(g.rand, advisoryTexts),
		Tags:             Choices(g.rand, advisoryTags, g.rand.IntBetween(1, 2)),
		Status:           status,
		VisibleToPatient: true,
		AcknowledgedAt:   acknowledgedAt,
		ExpiresAt:        time.Now().AddDate(0, 0, g.rand.IntBetween(7, 90)),
	}
}

// SymptomReport synthesizes 1-4 symptoms and derives the recommendation and
// urgency from the highest severity.
func (g *Generator) SymptomReport(patientID primitive.ObjectID) *symptom.Report {
	reported := make([]symptom.Symptom, g.rand.IntBetween(1, 4))
	maxSeverity := 0
	for i := range reported {
		sev := g.rand.IntBetween(1, 10)
		reported[i] = symptom.Symptom{Name: Choice(g.rand, symptoms), Severity: sev}
		if sev > maxSeverity {
			maxSeverity = sev
		}
	}
	recommendation, urgency := symptom.Triage(maxSeverity)

	return &symptom.Report{
		PatientID:      patientID,
		Timestamp:      g.rand.PastDate(g.rand.IntBetween(1, 60)),
		Symptoms:       reported,
		Recommendation: recommendation,
		UrgencyLevel:   urgency,
	}
}

// EmergencyCard synthesizes a card with a coin-flip visibility.
func (g *Generator) EmergencyCard(patientID primitive.ObjectID) *emergency.Card {
	return &emergency.Card{
		PatientID: patientID,
		IsPublic:  g.rand.Bool(0.5),
	}
}
