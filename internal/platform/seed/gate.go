package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wellness/wellness/internal/domain/identity"
	"github.com/wellness/wellness/internal/domain/preventive"
)

// Gate decides at startup whether the store needs its first seeding.
// Users and preventive rules are the anchor collections: data in either one
// marks the store as initialized.
type Gate struct {
	users  identity.UserRepository
	rules  preventive.Repository
	seeder *Seeder
	logger zerolog.Logger
}

func NewGate(users identity.UserRepository, rules preventive.Repository, seeder *Seeder, logger zerolog.Logger) *Gate {
	return &Gate{users: users, rules: rules, seeder: seeder, logger: logger}
}

// InitializeIfEmpty seeds the rule catalog and the synthetic dataset when
// both anchor collections are empty. It reports whether seeding ran.
//
// A failed existence check aborts with an error instead of being read as
// "empty": treating a transient read failure as an empty store would let a
// connectivity blip trigger a reseed that clears real data.
func (g *Gate) InitializeIfEmpty(ctx context.Context) (bool, error) {
	userCount, err := g.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("check users: %w", err)
	}
	ruleCount, err := g.rules.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("check rules: %w", err)
	}

	if userCount > 0 || ruleCount > 0 {
		g.logger.Info().
			Int64("users", userCount).
			Int64("rules", ruleCount).
			Msg("store already initialized, skipping seed")
		return false, nil
	}

	g.logger.Info().Msg("store is empty, starting initialization")

	if err := preventive.SeedRules(ctx, g.rules, g.logger); err != nil {
		return false, err
	}
	if _, err := g.seeder.Run(ctx); err != nil {
		return false, err
	}

	g.logger.Info().Msg("initialization completed")
	return true, nil
}
