// Package preventive holds the preventive-care rule records. Rules are
// matched against patient attributes by an external evaluation engine; here
// they are only stored and seeded.
package preventive

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rule describes one preventive-care recommendation. ConditionExpression is
// an uninterpreted string consumed by the external evaluator.
type Rule struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                    string             `bson:"name" json:"name"`
	ConditionExpression     string             `bson:"conditionExpression" json:"condition_expression"`
	RecommendationText      string             `bson:"recommendationText" json:"recommendation_text"`
	RecommendedIntervalDays int                `bson:"recommendedIntervalDays" json:"recommended_interval_days"`
	TestType                string             `bson:"testType" json:"test_type"`
	Enabled                 bool               `bson:"enabled" json:"enabled"`
}
