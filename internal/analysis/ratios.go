package analysis

import (
	"math"

	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
)

// RatioCalculator derives financial ratios from raw figures. Zero denominators
// are defined values, never errors: capacity ratios (current, quick) go to
// +Inf, rate ratios go to 0.
type RatioCalculator struct{}

func NewRatioCalculator() *RatioCalculator { return &RatioCalculator{} }

func (c *RatioCalculator) CalculateRatios(s models.FinancialSnapshot) models.RatioSet {
	var r models.RatioSet

	// Liquidity
	if s.CurrentLiabilities > 0 {
		r.CurrentRatio = s.CurrentAssets / s.CurrentLiabilities
		r.QuickRatio = (s.CurrentAssets - s.Inventory) / s.CurrentLiabilities
	} else {
		r.CurrentRatio = math.Inf(1)
		r.QuickRatio = math.Inf(1)
	}

	// Profitability
	if s.Revenue > 0 {
		r.ProfitMargin = (s.Revenue - s.TotalExpenses) / s.Revenue
		r.ExpenseRatio = s.TotalExpenses / s.Revenue
	}
	if s.TotalAssets > 0 {
		r.ROA = (s.Revenue - s.TotalExpenses) / s.TotalAssets
	}

	// Leverage
	if s.TotalAssets > 0 {
		r.DebtToAssetRatio = s.TotalDebt / s.TotalAssets
		r.EquityRatio = (s.TotalAssets - s.TotalDebt) / s.TotalAssets
	}

	// Efficiency: both turnover and DSO require receivables and revenue.
	if s.AccountsReceivable > 0 && s.Revenue > 0 {
		r.ReceivablesTurnover = s.Revenue / s.AccountsReceivable
		r.DaysSalesOutstanding = 365 / r.ReceivablesTurnover
	}

	r.RevenueGrowthRate = s.RevenueGrowthRate
	return r
}

var _ domsvc.RatioCalculator = (*RatioCalculator)(nil)
