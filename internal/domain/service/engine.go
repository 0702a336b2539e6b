package service

import "FinSight/internal/domain/models"

// The engine interfaces are deliberately context-free: every implementation is
// a deterministic, side-effect-free function of its arguments plus immutable
// startup tables, so there is nothing to cancel.

// RatioCalculator derives the dimensionless ratio view of a snapshot.
type RatioCalculator interface {
	CalculateRatios(s models.FinancialSnapshot) models.RatioSet
}

// RiskAssessor applies the threshold rule table to a snapshot and its ratios.
type RiskAssessor interface {
	AssessRisks(s models.FinancialSnapshot, r models.RatioSet) models.RiskProfile
}

// CreditScorer combines dimension sub-scores into a 0-100 credit assessment.
type CreditScorer interface {
	CalculateCreditScore(s models.FinancialSnapshot, r models.RatioSet) models.CreditAssessment
}

// BenchmarkComparator ranks ratios against the industry quartile table.
type BenchmarkComparator interface {
	CompareWithIndustry(industry string, r models.RatioSet) models.BenchmarkComparison
	IndustryBenchmarks(industry string) (map[string]models.Quartiles, bool)
}

// RecommendationEngine produces rule-based guidance and savings opportunities.
type RecommendationEngine interface {
	GenerateRecommendations(s models.FinancialSnapshot, r models.RatioSet) []string
	IdentifyCostSavings(s models.FinancialSnapshot) []models.CostSaving
}

// ForecastGenerator extrapolates health scores forward. History is
// most-recent-first; fewer than three records is an InsufficientData error.
type ForecastGenerator interface {
	GenerateForecast(history []models.ScoreRecord, months int) (models.Forecast, error)
}
