package models

import (
	"encoding/json"
	"math"
	"time"
)

// RiskLevel buckets an accumulated rule-trigger total.
type RiskLevel string

const (
	RiskMinimal RiskLevel = "MINIMAL"
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
)

// RiskFactors flags each risk dimension independently of the narrative list.
type RiskFactors struct {
	Liquidity     bool `json:"liquidity_risk"`
	Leverage      bool `json:"leverage_risk"`
	Profitability bool `json:"profitability_risk"`
	Growth        bool `json:"growth_risk"`
}

// RiskProfile is the RiskAssessor output. Score accumulates uncapped; the
// level is bucketed from it.
type RiskProfile struct {
	Score   int         `json:"risk_score"`
	Level   RiskLevel   `json:"risk_level"`
	Risks   []string    `json:"identified_risks"`
	Factors RiskFactors `json:"risk_factors"`
}

// SubScores are the five 0-100 dimension scores behind a credit score.
type SubScores struct {
	Liquidity     float64 `json:"liquidity"`
	Profitability float64 `json:"profitability"`
	Leverage      float64 `json:"leverage"`
	Efficiency    float64 `json:"efficiency"`
	Growth        float64 `json:"growth"`
}

// WeightVector is the industry-adjusted weight set actually applied; it always
// sums to 1.0 after renormalization.
type WeightVector struct {
	Liquidity     float64 `json:"liquidity"`
	Profitability float64 `json:"profitability"`
	Leverage      float64 `json:"leverage"`
	Efficiency    float64 `json:"efficiency"`
	Growth        float64 `json:"growth"`
}

// Sum returns the total weight mass.
func (w WeightVector) Sum() float64 {
	return w.Liquidity + w.Profitability + w.Leverage + w.Efficiency + w.Growth
}

// LoanProduct describes one recommended financing product.
type LoanProduct struct {
	Product      string `json:"product"`
	InterestRate string `json:"interest_rate"`
	MaxAmount    string `json:"max_amount"`
	Tenure       string `json:"tenure"`
}

// CreditAssessment is the CreditScorer output.
type CreditAssessment struct {
	Score     float64       `json:"overall_score"`
	Rating    string        `json:"rating"`
	SubScores SubScores     `json:"sub_scores"`
	Weights   WeightVector  `json:"weights"`
	SizeBonus float64       `json:"size_bonus"`
	Products  []LoanProduct `json:"recommended_products"`
}

// Quartiles is one industry/metric benchmark triple.
type Quartiles struct {
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
}

// BenchmarkTable maps industry -> metric -> quartiles. Built once at startup
// and never mutated; concurrent readers need no locking.
type BenchmarkTable map[string]map[string]Quartiles

// MetricComparison positions one company ratio inside its industry spread.
type MetricComparison struct {
	CompanyValue float64 `json:"company_value"`
	Q1           float64 `json:"industry_q1"`
	Median       float64 `json:"industry_median"`
	Q3           float64 `json:"industry_q3"`
	Percentile   float64 `json:"percentile"`
	Performance  string  `json:"performance"`
	Summary      string  `json:"comparison_text"`
}

// MarshalJSON applies the same "Infinity" sentinel as RatioSet: an unbounded
// current ratio flows into the comparison as the raw company value.
func (m MetricComparison) MarshalJSON() ([]byte, error) {
	type alias MetricComparison
	if math.IsInf(m.CompanyValue, 1) {
		return json.Marshal(struct {
			CompanyValue string `json:"company_value"`
			alias
		}{CompanyValue: "Infinity", alias: alias(m)})
	}
	return json.Marshal(alias(m))
}

func (m *MetricComparison) UnmarshalJSON(b []byte) error {
	type alias MetricComparison
	aux := struct {
		CompanyValue json.RawMessage `json:"company_value"`
		*alias
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if len(aux.CompanyValue) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.CompanyValue, &s); err == nil {
		if s == "Infinity" {
			m.CompanyValue = math.Inf(1)
		}
		return nil
	}
	return json.Unmarshal(aux.CompanyValue, &m.CompanyValue)
}

// BenchmarkComparison is the BenchmarkComparator output.
type BenchmarkComparison struct {
	Industry           string                      `json:"industry"`
	OverallPercentile  float64                     `json:"overall_percentile"`
	OverallPerformance string                      `json:"overall_performance"`
	Metrics            map[string]MetricComparison `json:"metric_comparisons"`
	Insights           []string                    `json:"industry_insights"`
	FocusAreas         []string                    `json:"recommended_focus_areas"`
}

// CostSaving is one cost optimization opportunity.
type CostSaving struct {
	Category         string  `json:"category"`
	PotentialSavings float64 `json:"potential_savings"`
	Recommendation   string  `json:"recommendation"`
	Priority         string  `json:"priority"`
}

// HealthAssessment bundles every engine output for one snapshot. Created fresh
// per request; only stores hold it afterwards.
type HealthAssessment struct {
	CompanyID       string              `json:"company_id"`
	Industry        string              `json:"industry"`
	OverallScore    float64             `json:"overall_health_score"`
	Rating          string              `json:"rating"`
	Ratios          RatioSet            `json:"financial_ratios"`
	Risk            RiskProfile         `json:"risk_analysis"`
	Credit          CreditAssessment    `json:"credit_assessment"`
	Benchmark       BenchmarkComparison `json:"industry_comparison"`
	Recommendations []string            `json:"recommendations"`
	CostSavings     []CostSaving        `json:"cost_optimization"`
	AssessedAt      time.Time           `json:"assessed_at"`
}

// ScoreRecord is one historical overall score, used for forecasting.
type ScoreRecord struct {
	Score float64   `json:"score"`
	At    time.Time `json:"at"`
}

// ForecastPoint projects one future month.
type ForecastPoint struct {
	Month          string  `json:"month"` // YYYY-MM
	ProjectedScore float64 `json:"projected_health_score"`
	Confidence     float64 `json:"confidence_level"`
}

// Forecast is the ForecastGenerator output.
type Forecast struct {
	Period      string          `json:"forecast_period"`
	Trend       string          `json:"trend_direction"` // improving | declining | stable
	Points      []ForecastPoint `json:"forecast_data"`
	Methodology string          `json:"methodology"`
}
