package preventive

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Catalog is the hand-authored set of preventive-care rules seeded as static
// content. The expressions are evaluated externally against patient age and
// sex.
var Catalog = []*Rule{
	{
		Name:                    "Cholesterol Check - Men 35+",
		ConditionExpression:     `age >= 35 AND sex === "male"`,
		RecommendationText:      "Annual cholesterol screening recommended for men 35 and older",
		RecommendedIntervalDays: 365,
		TestType:                "cholesterol",
		Enabled:                 true,
	},
	{
		Name:                    "Cholesterol Check - Women 45+",
		ConditionExpression:     `age >= 45 AND sex === "female"`,
		RecommendationText:      "Annual cholesterol screening recommended for women 45 and older",
		RecommendedIntervalDays: 365,
		TestType:                "cholesterol",
		Enabled:                 true,
	},
	{
		Name:                    "Blood Pressure Check",
		ConditionExpression:     "age >= 18",
		RecommendationText:      "Regular blood pressure monitoring recommended",
		RecommendedIntervalDays: 180,
		TestType:                "blood-pressure",
		Enabled:                 true,
	},
	{
		Name:                    "Flu Vaccine",
		ConditionExpression:     "age >= 6",
		RecommendationText:      "Annual flu vaccination recommended",
		RecommendedIntervalDays: 365,
		TestType:                "flu-vaccine",
		Enabled:                 true,
	},
	{
		Name:                    "Diabetes Screening - High Risk",
		ConditionExpression:     "age >= 45",
		RecommendationText:      "Diabetes screening recommended for adults 45 and older",
		RecommendedIntervalDays: 365,
		TestType:                "diabetes",
		Enabled:                 true,
	},
	{
		Name:                    "Mammogram - Women 40+",
		ConditionExpression:     `age >= 40 AND sex === "female"`,
		RecommendationText:      "Annual mammogram screening recommended for women 40 and older",
		RecommendedIntervalDays: 365,
		TestType:                "mammogram",
		Enabled:                 true,
	},
}

// SeedRules replaces the stored rule set with the static catalog.
func SeedRules(ctx context.Context, repo Repository, logger zerolog.Logger) error {
	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear rules: %w", err)
	}
	if err := repo.InsertMany(ctx, Catalog); err != nil {
		return fmt.Errorf("seed rules: %w", err)
	}
	logger.Info().Int("rules", len(Catalog)).Msg("seeded preventive care rules")
	return nil
}
