package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wellness/wellness/internal/domain/identity"
	"github.com/wellness/wellness/internal/domain/preventive"
)

func newTestGate(store *memStore, stores Stores) *Gate {
	seeder := NewSeeder(testConfig(), stores, zerolog.Nop())
	return NewGate(stores.Users, &memRules{store}, seeder, zerolog.Nop())
}

func TestGate_SeedsEmptyStore(t *testing.T) {
	store, stores := newMemStore()
	gate := newTestGate(store, stores)

	initialized, err := gate.InitializeIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("InitializeIfEmpty() error: %v", err)
	}
	if !initialized {
		t.Fatal("empty store should be initialized")
	}
	if len(store.users) == 0 {
		t.Error("no users seeded")
	}
	if len(store.rules) != len(preventive.Catalog) {
		t.Errorf("seeded %d rules, want %d", len(store.rules), len(preventive.Catalog))
	}
}

func TestGate_SecondRunIsNoOp(t *testing.T) {
	store, stores := newMemStore()
	gate := newTestGate(store, stores)

	if _, err := gate.InitializeIfEmpty(context.Background()); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	usersBefore := len(store.users)
	emailBefore := store.users[0].Email

	initialized, err := gate.InitializeIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if initialized {
		t.Fatal("second run should not reseed")
	}
	if len(store.users) != usersBefore || store.users[0].Email != emailBefore {
		t.Error("second run touched existing data")
	}
}

func TestGate_ExistingRulesBlockSeed(t *testing.T) {
	store, stores := newMemStore()
	store.rules = []*preventive.Rule{{Name: "existing"}}
	gate := newTestGate(store, stores)

	initialized, err := gate.InitializeIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("InitializeIfEmpty() error: %v", err)
	}
	if initialized {
		t.Fatal("store with rules should count as initialized")
	}
	if len(store.users) != 0 {
		t.Error("seeding ran despite existing rules")
	}
}

// countErrUsers fails the existence check itself.
type countErrUsers struct{ memUsers }

func (c *countErrUsers) Count(context.Context) (int64, error) {
	return 0, errors.New("connection reset")
}

func TestGate_FailsClosedOnCountError(t *testing.T) {
	store, stores := newMemStore()
	var broken identity.UserRepository = &countErrUsers{memUsers{store}}
	seeder := NewSeeder(testConfig(), stores, zerolog.Nop())
	gate := NewGate(broken, &memRules{store}, seeder, zerolog.Nop())

	initialized, err := gate.InitializeIfEmpty(context.Background())
	if err == nil {
		t.Fatal("expected error when the existence check fails")
	}
	if initialized {
		t.Fatal("failed check must not report initialization")
	}
	if len(store.users) != 0 || len(store.rules) != 0 {
		t.Error("failed check must not trigger seeding")
	}
}
