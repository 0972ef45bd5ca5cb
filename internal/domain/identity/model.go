package identity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RolePatient  = "patient"
	RoleProvider = "provider"
)

// User is a platform account. Exactly one Patient or Provider profile hangs
// off each user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Name         string             `bson:"name" json:"name"`
	ConsentGiven bool               `bson:"consentGiven" json:"consent_given"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}

// Medication is a current prescription on a patient record.
type Medication struct {
	Name      string `bson:"name" json:"name"`
	Dosage    string `bson:"dosage" json:"dosage"`
	Frequency string `bson:"frequency" json:"frequency"`
}

// TestRecord is a past screening or lab test.
type TestRecord struct {
	Type string    `bson:"type" json:"type"`
	Date time.Time `bson:"date" json:"date"`
}

// Immunization is a past vaccination.
type Immunization struct {
	Name string    `bson:"name" json:"name"`
	Date time.Time `bson:"date" json:"date"`
}

// EmergencyContact is who to call about a patient.
type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Phone        string `bson:"phone" json:"phone"`
	Relationship string `bson:"relationship" json:"relationship"`
}

// Patient is the clinical profile owned by a user with the patient role.
type Patient struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID  `bson:"userId" json:"user_id"`
	DOB              time.Time           `bson:"dob" json:"dob"`
	Sex              string              `bson:"sex" json:"sex"`
	BloodGroup       string              `bson:"bloodGroup" json:"blood_group"`
	Allergies        []string            `bson:"allergies" json:"allergies"`
	Medications      []Medication        `bson:"medications" json:"medications"`
	Conditions       []string            `bson:"conditions" json:"conditions"`
	LastTests        []TestRecord        `bson:"lastTests" json:"last_tests"`
	Immunizations    []Immunization      `bson:"immunizations" json:"immunizations"`
	EmergencyContact EmergencyContact    `bson:"emergencyContact" json:"emergency_contact"`
	AssignedProvider *primitive.ObjectID `bson:"assignedProvider,omitempty" json:"assigned_provider,omitempty"`
}

// Provider is the professional profile owned by a user with the provider
// role. Patients holds the ids of patients assigned to this provider.
type Provider struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID   `bson:"userId" json:"user_id"`
	Specialization string               `bson:"specialization" json:"specialization"`
	LicenseNumber  string               `bson:"licenseNumber" json:"license_number"`
	Patients       []primitive.ObjectID `bson:"patients" json:"patients"`
}

// AgeAt returns the patient's age in whole years at the given time.
func (p *Patient) AgeAt(at time.Time) int {
	age := at.Year() - p.DOB.Year()
	if at.Month() < p.DOB.Month() || (at.Month() == p.DOB.Month() && at.Day() < p.DOB.Day()) {
		age--
	}
	return age
}
