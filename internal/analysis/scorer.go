package analysis

import (
	"strings"

	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
)

// band is one row of a monotone step function: the first satisfied threshold
// wins, so rows must be ordered from highest threshold down. Every table ends
// with a catchAll row so evaluation is total.
type band struct {
	min   float64 // inclusive lower bound on the input
	score float64
}

// scoreBands evaluates an ordered band table top-down. The tables below all
// terminate with a catch-all row, so evaluation is total.
func scoreBands(bands []band, v float64) float64 {
	for _, b := range bands {
		if v >= b.min {
			return b.score
		}
	}
	// unreachable with a catch-all row; keep the function total anyway
	return bands[len(bands)-1].score
}

// scoreBandsInv is the "lower is better" variant: first row whose max bound
// contains the value wins.
func scoreBandsInv(bands []band, v float64) float64 {
	for _, b := range bands {
		if v <= b.min {
			return b.score
		}
	}
	return bands[len(bands)-1].score
}

const catchAll = -1e18 // below any plausible ratio

var (
	currentRatioBands = []band{{2.0, 100}, {1.5, 80}, {1.0, 60}, {0.8, 40}, {catchAll, 20}}
	quickRatioBands   = []band{{1.5, 100}, {1.0, 80}, {0.8, 60}, {0.5, 40}, {catchAll, 20}}
	profitMarginBands = []band{{0.20, 100}, {0.15, 85}, {0.10, 70}, {0.05, 55}, {0, 40}, {catchAll, 10}}
	roaBands          = []band{{0.15, 100}, {0.10, 80}, {0.05, 60}, {0, 40}, {catchAll, 10}}
	// inverted tables: value at or below the bound earns the score
	debtToAssetBands = []band{{0.20, 100}, {0.40, 80}, {0.60, 60}, {0.80, 40}, {1e18, 20}}
	dsoBands         = []band{{30, 100}, {45, 80}, {60, 60}, {90, 40}, {1e18, 20}}

	equityRatioBands = []band{{0.80, 100}, {0.60, 80}, {0.40, 60}, {0.20, 40}, {catchAll, 20}}
	turnoverBands    = []band{{12, 100}, {8, 80}, {6, 60}, {4, 40}, {catchAll, 20}}
	growthBands      = []band{{0.30, 100}, {0.20, 85}, {0.15, 70}, {0.10, 60}, {0.05, 50}, {0, 40}, {-0.05, 30}, {-0.10, 20}, {catchAll, 10}}
)

// baseWeights sum to 1.0 before any industry adjustment.
var baseWeights = models.WeightVector{
	Liquidity:     0.25,
	Profitability: 0.30,
	Leverage:      0.25,
	Efficiency:    0.10,
	Growth:        0.10,
}

// industryWeightDeltas nudges one or two dimensions per industry; the adjusted
// vector is renormalized afterwards so it always sums to exactly 1.0.
var industryWeightDeltas = map[string]models.WeightVector{
	models.IndustryManufacturing: {Leverage: 0.05, Efficiency: 0.05},
	models.IndustryRetail:        {Liquidity: 0.05, Efficiency: 0.05},
	models.IndustryServices:      {Profitability: 0.05, Growth: 0.05},
	models.IndustryAgriculture:   {Growth: -0.05, Leverage: 0.05},
	models.IndustryLogistics:     {Efficiency: 0.10, Leverage: -0.05},
	models.IndustryECommerce:     {Growth: 0.10, Liquidity: -0.05},
}

// ratingLadder partitions [0,100] into eight non-overlapping rating buckets.
var ratingLadder = []struct {
	min    float64
	rating string
}{
	{90, "AAA"}, {80, "AA"}, {70, "A"}, {60, "BBB"},
	{50, "BB"}, {40, "B"}, {30, "CCC"}, {catchAll, "D"},
}

// CreditScorer blends five banded sub-scores with industry-adjusted weights
// and a revenue size bonus into a clamped 0-100 score.
type CreditScorer struct{}

func NewCreditScorer() *CreditScorer { return &CreditScorer{} }

func (c *CreditScorer) CalculateCreditScore(s models.FinancialSnapshot, r models.RatioSet) models.CreditAssessment {
	sub := models.SubScores{
		Liquidity:     scoreBands(currentRatioBands, r.CurrentRatio)*0.6 + scoreBands(quickRatioBands, r.QuickRatio)*0.4,
		Profitability: scoreBands(profitMarginBands, r.ProfitMargin)*0.7 + scoreBands(roaBands, r.ROA)*0.3,
		Leverage:      scoreBandsInv(debtToAssetBands, r.DebtToAssetRatio)*0.6 + scoreBands(equityRatioBands, r.EquityRatio)*0.4,
		Efficiency:    scoreBands(turnoverBands, r.ReceivablesTurnover)*0.5 + scoreBandsInv(dsoBands, r.DaysSalesOutstanding)*0.5,
		Growth:        scoreBands(growthBands, r.RevenueGrowthRate),
	}

	w := AdjustWeights(s.Industry)
	score := sub.Liquidity*w.Liquidity +
		sub.Profitability*w.Profitability +
		sub.Leverage*w.Leverage +
		sub.Efficiency*w.Efficiency +
		sub.Growth*w.Growth

	bonus := sizeBonus(s.Revenue)
	score = max(0, min(100, score+bonus))

	return models.CreditAssessment{
		Score:     score,
		Rating:    Rating(score),
		SubScores: sub,
		Weights:   w,
		SizeBonus: bonus,
		Products:  recommendedProducts(score),
	}
}

// AdjustWeights applies the per-industry deltas and renormalizes. Unknown
// industries keep the base weights unmodified.
func AdjustWeights(industry string) models.WeightVector {
	w := baseWeights
	d, ok := industryWeightDeltas[strings.ToLower(industry)]
	if !ok {
		return w
	}
	w.Liquidity += d.Liquidity
	w.Profitability += d.Profitability
	w.Leverage += d.Leverage
	w.Efficiency += d.Efficiency
	w.Growth += d.Growth

	total := w.Sum()
	w.Liquidity /= total
	w.Profitability /= total
	w.Leverage /= total
	w.Efficiency /= total
	w.Growth /= total
	return w
}

// sizeBonus rewards revenue scale: breakpoints at 10 lakh, 50 lakh and 1 crore.
func sizeBonus(revenue float64) float64 {
	switch {
	case revenue >= 10_000_000:
		return 5
	case revenue >= 5_000_000:
		return 3
	case revenue >= 1_000_000:
		return 1
	default:
		return 0
	}
}

// Rating maps a clamped score onto the eight-letter ladder.
func Rating(score float64) string {
	for _, b := range ratingLadder {
		if score >= b.min {
			return b.rating
		}
	}
	return "D"
}

// recommendedProducts is a three-tier lookup keyed by score band.
func recommendedProducts(score float64) []models.LoanProduct {
	switch {
	case score >= 70:
		return []models.LoanProduct{
			{Product: "Term Loan", InterestRate: "8.5-10.5%", MaxAmount: "Up to 5 Crores", Tenure: "1-7 years"},
			{Product: "Working Capital Loan", InterestRate: "9.0-11.0%", MaxAmount: "Up to 2 Crores", Tenure: "12 months"},
		}
	case score >= 50:
		return []models.LoanProduct{
			{Product: "MSME Loan", InterestRate: "10.0-12.0%", MaxAmount: "Up to 1 Crore", Tenure: "1-5 years"},
			{Product: "Invoice Financing", InterestRate: "12.0-15.0%", MaxAmount: "Up to 50 Lakhs", Tenure: "30-90 days"},
		}
	default:
		return []models.LoanProduct{
			{Product: "Secured Business Loan", InterestRate: "12.0-16.0%", MaxAmount: "Up to 25 Lakhs", Tenure: "1-3 years"},
			{Product: "Merchant Cash Advance", InterestRate: "15.0-20.0%", MaxAmount: "Up to 10 Lakhs", Tenure: "3-12 months"},
		}
	}
}

var _ domsvc.CreditScorer = (*CreditScorer)(nil)
