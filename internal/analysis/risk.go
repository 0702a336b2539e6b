package analysis

import (
	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
)

// riskRule is one row of the decision table: rules are mutually non-exclusive
// and evaluated in fixed order, each contributing its weight on trigger. No
// rule depends on another's outcome.
type riskRule struct {
	weight    int
	narrative string
	fires     func(s models.FinancialSnapshot, r models.RatioSet) bool
}

// RiskAssessor scores a snapshot against the fixed rule table and buckets the
// accumulated total into a coarse level.
type RiskAssessor struct {
	rules []riskRule
}

func NewRiskAssessor() *RiskAssessor {
	return &RiskAssessor{rules: []riskRule{
		{25, "Low liquidity - Current ratio below 1.0", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.CurrentRatio < 1.0
		}},
		{15, "Moderate liquidity concern", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.CurrentRatio >= 1.0 && r.CurrentRatio < 1.5
		}},
		{30, "High leverage - Debt to asset ratio above 80%", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.DebtToAssetRatio > 0.8
		}},
		{20, "Moderate leverage concern", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.DebtToAssetRatio > 0.6 && r.DebtToAssetRatio <= 0.8
		}},
		{35, "Operating at a loss", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.ProfitMargin < 0
		}},
		{20, "Low profit margins", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.ProfitMargin >= 0 && r.ProfitMargin < 0.05
		}},
		{25, "Declining revenue", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.RevenueGrowthRate < 0
		}},
		{10, "Slow revenue growth", func(_ models.FinancialSnapshot, r models.RatioSet) bool {
			return r.RevenueGrowthRate >= 0 && r.RevenueGrowthRate < 0.05
		}},
		{15, "High accounts receivable - potential cash flow issues", func(s models.FinancialSnapshot, _ models.RatioSet) bool {
			return s.AccountsReceivable > s.Revenue*0.25
		}},
	}}
}

func (a *RiskAssessor) AssessRisks(s models.FinancialSnapshot, r models.RatioSet) models.RiskProfile {
	p := models.RiskProfile{Risks: []string{}}
	for _, rule := range a.rules {
		if rule.fires(s, r) {
			p.Score += rule.weight
			p.Risks = append(p.Risks, rule.narrative)
		}
	}
	p.Level = riskLevel(p.Score)
	p.Factors = models.RiskFactors{
		Liquidity:     r.CurrentRatio < 1.5,
		Leverage:      r.DebtToAssetRatio > 0.6,
		Profitability: r.ProfitMargin < 0.05,
		Growth:        r.RevenueGrowthRate < 0.05,
	}
	return p
}

// riskLevel buckets the uncapped accumulated score.
func riskLevel(score int) models.RiskLevel {
	switch {
	case score >= 70:
		return models.RiskHigh
	case score >= 40:
		return models.RiskMedium
	case score >= 20:
		return models.RiskLow
	default:
		return models.RiskMinimal
	}
}

var _ domsvc.RiskAssessor = (*RiskAssessor)(nil)
