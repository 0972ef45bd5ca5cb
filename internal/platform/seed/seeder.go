package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellness/wellness/internal/domain/advisory"
	"github.com/wellness/wellness/internal/domain/emergency"
	"github.com/wellness/wellness/internal/domain/engagement"
	"github.com/wellness/wellness/internal/domain/identity"
	"github.com/wellness/wellness/internal/domain/symptom"
	"github.com/wellness/wellness/internal/domain/wellness"
)

// Config controls the volume of generated data. Seed fixes the randomness
// source; 0 means a time-based seed.
type Config struct {
	Providers       int   `json:"providers"`
	Patients        int   `json:"patients"`
	WellnessEntries int   `json:"wellnessEntries"`
	Reminders       int   `json:"reminders"`
	Advisories      int   `json:"advisories"`
	SymptomReports  int   `json:"symptomReports"`
	Seed            int64 `json:"seed"`
}

// Validate rejects volume combinations that cannot be seeded: negative
// counts, and dependent records requested without the entities they
// reference. Run checks this before touching the store, so a bad config
// never gets as far as the clear phase.
func (c Config) Validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"providers", c.Providers},
		{"patients", c.Patients},
		{"wellnessEntries", c.WellnessEntries},
		{"reminders", c.Reminders},
		{"advisories", c.Advisories},
		{"symptomReports", c.SymptomReports},
	}
	for _, count := range counts {
		if count.n < 0 {
			return fmt.Errorf("%s must not be negative, got %d", count.name, count.n)
		}
	}
	if c.Providers == 0 && (c.Patients > 0 || c.Advisories > 0) {
		return fmt.Errorf("patients and advisories require at least one provider")
	}
	if c.Patients == 0 && (c.WellnessEntries > 0 || c.Reminders > 0 || c.SymptomReports > 0) {
		return fmt.Errorf("wellness entries, reminders, and symptom reports require at least one patient")
	}
	return nil
}

// DefaultConfig returns the stock volumes for a development database.
func DefaultConfig() Config {
	return Config{
		Providers:       6,
		Patients:        45,
		WellnessEntries: 60,
		Reminders:       25,
		Advisories:      18,
		SymptomReports:  12,
	}
}

// Stores bundles the per-entity persistence operations the seeder needs.
type Stores struct {
	Users      identity.UserRepository
	Providers  identity.ProviderRepository
	Patients   identity.PatientRepository
	Wellness   wellness.Repository
	Reminders  engagement.ReminderRepository
	Adherence  engagement.AdherenceRepository
	Advisories advisory.Repository
	Symptoms   symptom.Repository
	Cards      emergency.Repository
}

// Result summarizes one seeding run.
type Result struct {
	Users             int           `json:"users"`
	Providers         int           `json:"providers"`
	Patients          int           `json:"patients"`
	WellnessEntries   int           `json:"wellnessEntries"`
	Reminders         int           `json:"reminders"`
	AdherenceRecords  int           `json:"adherenceRecords"`
	Advisories        int           `json:"advisories"`
	AdvisoriesSkipped int           `json:"advisoriesSkipped"`
	SymptomReports    int           `json:"symptomReports"`
	EmergencyCards    int           `json:"emergencyCards"`
	Duration          time.Duration `json:"duration"`
}

// Total returns the number of records created.
func (r *Result) Total() int {
	return r.Users + r.Providers + r.Patients + r.WellnessEntries +
		r.Reminders + r.AdherenceRecords + r.Advisories +
		r.SymptomReports + r.EmergencyCards
}

// Seeder populates the store with a synthetic dataset. Phases run strictly
// in dependency order so that every foreign key written in a later phase
// references an id created earlier in the same run. The first error aborts
// the run; recovery is a rerun, which starts with a full clear.
type Seeder struct {
	cfg    Config
	stores Stores
	gen    *Generator
	rand   *Rand
	logger zerolog.Logger
}

func NewSeeder(cfg Config, stores Stores, logger zerolog.Logger) *Seeder {
	r := NewRand(cfg.Seed)
	return &Seeder{
		cfg:    cfg,
		stores: stores,
		gen:    NewGenerator(r),
		rand:   r,
		logger: logger,
	}
}

// Run clears the store and seeds the full dataset.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{}

	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seed config: %w", err)
	}
	if err := s.clear(ctx); err != nil {
		return nil, err
	}

	providers, err := s.seedProviders(ctx, res)
	if err != nil {
		return nil, err
	}
	patients, err := s.seedPatients(ctx, providers, res)
	if err != nil {
		return nil, err
	}
	if err := s.seedWellnessEntries(ctx, patients, res); err != nil {
		return nil, err
	}
	if err := s.seedReminders(ctx, patients, res); err != nil {
		return nil, err
	}
	if err := s.seedAdvisories(ctx, providers, res); err != nil {
		return nil, err
	}
	if err := s.seedSymptomReports(ctx, patients, res); err != nil {
		return nil, err
	}
	if err := s.seedEmergencyCards(ctx, patients, res); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	s.logger.Info().
		Int("users", res.Users).
		Int("providers", res.Providers).
		Int("patients", res.Patients).
		Int("wellness_entries", res.WellnessEntries).
		Int("reminders", res.Reminders).
		Int("adherence_records", res.AdherenceRecords).
		Int("advisories", res.Advisories).
		Int("symptom_reports", res.SymptomReports).
		Int("emergency_cards", res.EmergencyCards).
		Int("total", res.Total()).
		Dur("duration", res.Duration).
		Msg("seeding completed")

	return res, nil
}

// clear deletes every collection in strict reverse-dependency order so no
// surviving record points at an already-deleted one mid-clear.
func (s *Seeder) clear(ctx context.Context) error {
	s.logger.Info().Msg("clearing existing data")

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"emergency cards", s.stores.Cards.DeleteAll},
		{"adherence records", s.stores.Adherence.DeleteAll},
		{"symptom reports", s.stores.Symptoms.DeleteAll},
		{"advisories", s.stores.Advisories.DeleteAll},
		{"reminders", s.stores.Reminders.DeleteAll},
		{"wellness entries", s.stores.Wellness.DeleteAll},
		{"patients", s.stores.Patients.DeleteAll},
		{"providers", s.stores.Providers.DeleteAll},
		{"users", s.stores.Users.DeleteAll},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
	}
	return nil
}

func (s *Seeder) seedProviders(ctx context.Context, res *Result) ([]*identity.Provider, error) {
	s.logger.Info().Int("count", s.cfg.Providers).Msg("creating providers")

	providers := make([]*identity.Provider, 0, s.cfg.Providers)
	for i := 0; i < s.cfg.Providers; i++ {
		user := s.gen.User(identity.RoleProvider)
		if err := s.stores.Users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create provider user: %w", err)
		}
		res.Users++

		provider := s.gen.Provider(user.ID)
		if err := s.stores.Providers.Create(ctx, provider); err != nil {
			return nil, fmt.Errorf("create provider: %w", err)
		}
		res.Providers++
		providers = append(providers, provider)

		s.logger.Debug().
			Str("name", user.Name).
			Str("specialization", provider.Specialization).
			Msg("created provider")
	}
	return providers, nil
}

func (s *Seeder) seedPatients(ctx context.Context, providers []*identity.Provider, res *Result) ([]*identity.Patient, error) {
	s.logger.Info().Int("count", s.cfg.Patients).Msg("creating patients")

	patients := make([]*identity.Patient, 0, s.cfg.Patients)
	for i := 0; i < s.cfg.Patients; i++ {
		user := s.gen.User(identity.RolePatient)
		if err := s.stores.Users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create patient user: %w", err)
		}
		res.Users++

		provider := Choice(s.rand, providers)
		providerID := provider.ID
		patient := s.gen.Patient(user.ID, &providerID)
		if err := s.stores.Patients.Create(ctx, patient); err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		res.Patients++

		if err := s.stores.Providers.AppendPatient(ctx, provider.ID, patient.ID); err != nil {
			return nil, err
		}
		provider.Patients = append(provider.Patients, patient.ID)
		patients = append(patients, patient)

		if (i+1)%10 == 0 {
			s.logger.Info().Int("created", i+1).Int("total", s.cfg.Patients).Msg("creating patients")
		}
	}
	return patients, nil
}

func (s *Seeder) seedWellnessEntries(ctx context.Context, patients []*identity.Patient, res *Result) error {
	s.logger.Info().Int("count", s.cfg.WellnessEntries).Msg("creating wellness entries")

	for i := 0; i < s.cfg.WellnessEntries; i++ {
		patient := Choice(s.rand, patients)
		entry := s.gen.WellnessEntry(patient.ID, s.rand.IntBetween(0, 30))
		if err := s.stores.Wellness.Create(ctx, entry); err != nil {
			return fmt.Errorf("create wellness entry: %w", err)
		}
		res.WellnessEntries++
	}
	return nil
}

func (s *Seeder) seedReminders(ctx context.Context, patients []*identity.Patient, res *Result) error {
	s.logger.Info().Int("count", s.cfg.Reminders).Msg("creating reminders")

	for i := 0; i < s.cfg.Reminders; i++ {
		patient := Choice(s.rand, patients)
		reminder := s.gen.Reminder(patient.ID)
		if err := s.stores.Reminders.Create(ctx, reminder); err != nil {
			return fmt.Errorf("create reminder: %w", err)
		}
		res.Reminders++

		// Roughly half the reminders get an adherence history.
		if s.rand.Bool(0.5) {
			n := s.rand.IntBetween(1, 5)
			for j := 0; j < n; j++ {
				record := s.gen.Adherence(reminder.ID, patient.ID)
				if err := s.stores.Adherence.Create(ctx, record); err != nil {
					return fmt.Errorf("create adherence record: %w", err)
				}
				res.AdherenceRecords++
			}
		}
	}
	return nil
}

func (s *Seeder) seedAdvisories(ctx context.Context, providers []*identity.Provider, res *Result) error {
	s.logger.Info().Int("count", s.cfg.Advisories).Msg("creating advisories")

	for i := 0; i < s.cfg.Advisories; i++ {
		provider := Choice(s.rand, providers)
		assigned, err := s.stores.Patients.ListByProvider(ctx, provider.ID)
		if err != nil {
			return fmt.Errorf("list provider patients: %w", err)
		}
		// A provider with no assigned patients yields no advisory; the run
		// produces fewer than configured rather than failing.
		if len(assigned) == 0 {
			res.AdvisoriesSkipped++
			continue
		}

		patient := Choice(s.rand, assigned)
		adv := s.gen.Advisory(provider.ID, patient.ID)
		if err := s.stores.Advisories.Create(ctx, adv); err != nil {
			return fmt.Errorf("create advisory: %w", err)
		}
		res.Advisories++
	}
	return nil
}

func (s *Seeder) seedSymptomReports(ctx context.Context, patients []*identity.Patient, res *Result) error {
	s.logger.Info().Int("count", s.cfg.SymptomReports).Msg("creating symptom reports")

	for i := 0; i < s.cfg.SymptomReports; i++ {
		patient := Choice(s.rand, patients)
		report := s.gen.SymptomReport(patient.ID)
		if err := s.stores.Symptoms.Create(ctx, report); err != nil {
			return fmt.Errorf("create symptom report: %w", err)
		}
		res.SymptomReports++
	}
	return nil
}

func (s *Seeder) seedEmergencyCards(ctx context.Context, patients []*identity.Patient, res *Result) error {
	s.logger.Info().Msg("creating emergency cards")

	for _, patient := range patients {
		// Cards exist for roughly 70% of patients.
		if !s.rand.Bool(0.7) {
			continue
		}
		card := s.gen.EmergencyCard(patient.ID)
		if err := s.stores.Cards.Create(ctx, card); err != nil {
			return fmt.Errorf("create emergency card: %w", err)
		}
		res.EmergencyCards++
	}
	return nil
}
