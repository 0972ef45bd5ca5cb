package preventive

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

type mockRuleRepo struct {
	rules   []*Rule
	cleared int
}

func (m *mockRuleRepo) InsertMany(_ context.Context, rules []*Rule) error {
	m.rules = append(m.rules, rules...)
	return nil
}

func (m *mockRuleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rules)), nil
}

func (m *mockRuleRepo) DeleteAll(_ context.Context) error {
	m.rules = nil
	m.cleared++
	return nil
}

func TestCatalog_Shape(t *testing.T) {
	if len(Catalog) != 6 {
		t.Fatalf("expected 6 catalog rules, got %d", len(Catalog))
	}
	seen := make(map[string]bool)
	for _, r := range Catalog {
		if r.Name == "" || r.ConditionExpression == "" || r.RecommendationText == "" {
			t.Errorf("rule %q has empty fields", r.Name)
		}
		if r.RecommendedIntervalDays <= 0 {
			t.Errorf("rule %q has non-positive interval", r.Name)
		}
		if r.TestType == "" {
			t.Errorf("rule %q has no test type", r.Name)
		}
		if !r.Enabled {
			t.Errorf("rule %q should be enabled", r.Name)
		}
		if seen[r.Name] {
			t.Errorf("duplicate rule name %q", r.Name)
		}
		seen[r.Name] = true
	}
}

func TestSeedRules_ReplacesExisting(t *testing.T) {
	repo := &mockRuleRepo{rules: []*Rule{{Name: "stale"}}}
	logger := zerolog.New(os.Stderr)

	if err := SeedRules(context.Background(), repo, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.cleared != 1 {
		t.Errorf("expected one clear pass, got %d", repo.cleared)
	}
	if len(repo.rules) != len(Catalog) {
		t.Errorf("expected %d rules after seeding, got %d", len(Catalog), len(repo.rules))
	}
	for _, r := range repo.rules {
		if r.Name == "stale" {
			t.Error("stale rule survived reseeding")
		}
	}
}
