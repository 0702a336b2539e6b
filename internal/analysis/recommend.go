package analysis

import (
	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
)

// recommendationRule is one trigger with its advice lines; rules are
// independent and emitted in table order.
type recommendationRule struct {
	fires  func(s models.FinancialSnapshot, r models.RatioSet) bool
	advice []string
}

// RecommendationEngine produces actionable guidance and cost-saving
// opportunities from fixed rule tables.
type RecommendationEngine struct {
	rules []recommendationRule
}

func NewRecommendationEngine() *RecommendationEngine {
	return &RecommendationEngine{rules: []recommendationRule{
		{func(_ models.FinancialSnapshot, r models.RatioSet) bool { return r.CurrentRatio < 1.5 }, []string{
			"Improve working capital management - consider invoice factoring or short-term credit facilities",
			"Accelerate accounts receivable collection",
		}},
		{func(_ models.FinancialSnapshot, r models.RatioSet) bool { return r.ProfitMargin < 0.10 }, []string{
			"Review pricing strategy and cost structure",
			"Identify and eliminate non-essential expenses",
		}},
		{func(_ models.FinancialSnapshot, r models.RatioSet) bool { return r.DebtToAssetRatio > 0.6 }, []string{
			"Consider debt restructuring or equity financing",
			"Focus on debt reduction through improved cash flow",
		}},
		{func(_ models.FinancialSnapshot, r models.RatioSet) bool { return r.RevenueGrowthRate < 0.10 }, []string{
			"Develop new revenue streams or market expansion strategies",
			"Invest in marketing and customer acquisition",
		}},
		{func(_ models.FinancialSnapshot, r models.RatioSet) bool { return r.DaysSalesOutstanding > 45 }, []string{
			"Implement stricter credit policies and collection procedures",
		}},
	}}
}

func (e *RecommendationEngine) GenerateRecommendations(s models.FinancialSnapshot, r models.RatioSet) []string {
	out := []string{}
	for _, rule := range e.rules {
		if rule.fires(s, r) {
			out = append(out, rule.advice...)
		}
	}
	return out
}

// IdentifyCostSavings always emits the technology and vendor opportunities;
// the cost-audit entry is added only above the 85% expense ratio trigger.
func (e *RecommendationEngine) IdentifyCostSavings(s models.FinancialSnapshot) []models.CostSaving {
	out := []models.CostSaving{}

	var expenseRatio float64
	if s.Revenue > 0 {
		expenseRatio = s.TotalExpenses / s.Revenue
	}
	if expenseRatio > 0.85 {
		out = append(out, models.CostSaving{
			Category:         "Overall Cost Structure",
			PotentialSavings: (expenseRatio - 0.80) * s.Revenue,
			Recommendation:   "Comprehensive cost audit and reduction program",
			Priority:         "HIGH",
		})
	}

	out = append(out,
		models.CostSaving{
			Category:         "Technology & Automation",
			PotentialSavings: s.TotalExpenses * 0.05,
			Recommendation:   "Implement automation tools to reduce manual processes",
			Priority:         "MEDIUM",
		},
		models.CostSaving{
			Category:         "Vendor Management",
			PotentialSavings: s.TotalExpenses * 0.03,
			Recommendation:   "Renegotiate supplier contracts and consolidate vendors",
			Priority:         "MEDIUM",
		},
	)
	return out
}

var _ domsvc.RecommendationEngine = (*RecommendationEngine)(nil)
