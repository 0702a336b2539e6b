package analysis

import (
	"math"
	"testing"

	"FinSight/internal/domain/models"
)

func healthySnapshot() models.FinancialSnapshot {
	return models.FinancialSnapshot{
		Industry:           models.IndustryServices,
		Revenue:            1_000_000,
		TotalExpenses:      850_000,
		CurrentAssets:      400_000,
		CurrentLiabilities: 200_000,
		TotalAssets:        1_200_000,
		TotalDebt:          360_000,
		Inventory:          100_000,
		AccountsReceivable: 150_000,
		AccountsPayable:    90_000,
		RevenueGrowthRate:  0.12,
	}
}

func TestCalculateRatios(t *testing.T) {
	r := NewRatioCalculator().CalculateRatios(healthySnapshot())

	if r.CurrentRatio != 2.0 {
		t.Fatalf("current ratio: got %v want 2.0", r.CurrentRatio)
	}
	if r.QuickRatio != 1.5 {
		t.Fatalf("quick ratio: got %v want 1.5", r.QuickRatio)
	}
	if math.Abs(r.ProfitMargin-0.15) > 1e-12 {
		t.Fatalf("profit margin: got %v want 0.15", r.ProfitMargin)
	}
	if math.Abs(r.ExpenseRatio-0.85) > 1e-12 {
		t.Fatalf("expense ratio: got %v want 0.85", r.ExpenseRatio)
	}
	if math.Abs(r.ROA-0.125) > 1e-12 {
		t.Fatalf("roa: got %v want 0.125", r.ROA)
	}
	if math.Abs(r.DebtToAssetRatio-0.30) > 1e-12 {
		t.Fatalf("debt to asset: got %v want 0.30", r.DebtToAssetRatio)
	}
	if math.Abs(r.EquityRatio-0.70) > 1e-12 {
		t.Fatalf("equity ratio: got %v want 0.70", r.EquityRatio)
	}
	wantTurnover := 1_000_000.0 / 150_000.0
	if math.Abs(r.ReceivablesTurnover-wantTurnover) > 1e-12 {
		t.Fatalf("turnover: got %v want %v", r.ReceivablesTurnover, wantTurnover)
	}
	if math.Abs(r.DaysSalesOutstanding-365/wantTurnover) > 1e-9 {
		t.Fatalf("dso: got %v", r.DaysSalesOutstanding)
	}
	if r.RevenueGrowthRate != 0.12 {
		t.Fatalf("growth passthrough: got %v", r.RevenueGrowthRate)
	}
}

func TestCalculateRatiosZeroLiabilities(t *testing.T) {
	s := healthySnapshot()
	s.CurrentLiabilities = 0
	r := NewRatioCalculator().CalculateRatios(s)

	if !math.IsInf(r.CurrentRatio, 1) {
		t.Fatalf("current ratio with zero liabilities: got %v want +Inf", r.CurrentRatio)
	}
	if !math.IsInf(r.QuickRatio, 1) {
		t.Fatalf("quick ratio with zero liabilities: got %v want +Inf", r.QuickRatio)
	}
}

func TestCalculateRatiosZeroEverything(t *testing.T) {
	r := NewRatioCalculator().CalculateRatios(models.FinancialSnapshot{Industry: models.IndustryRetail})

	if !math.IsInf(r.CurrentRatio, 1) || !math.IsInf(r.QuickRatio, 1) {
		t.Fatalf("liquidity ratios should be +Inf, got %v %v", r.CurrentRatio, r.QuickRatio)
	}
	for name, v := range map[string]float64{
		"profit_margin":          r.ProfitMargin,
		"expense_ratio":          r.ExpenseRatio,
		"roa":                    r.ROA,
		"debt_to_asset":          r.DebtToAssetRatio,
		"equity_ratio":           r.EquityRatio,
		"receivables_turnover":   r.ReceivablesTurnover,
		"days_sales_outstanding": r.DaysSalesOutstanding,
	} {
		if v != 0 {
			t.Fatalf("%s with zero inputs: got %v want 0", name, v)
		}
	}
}

func TestCalculateRatiosZeroRevenueWithReceivables(t *testing.T) {
	s := healthySnapshot()
	s.Revenue = 0
	r := NewRatioCalculator().CalculateRatios(s)

	if r.ReceivablesTurnover != 0 || r.DaysSalesOutstanding != 0 {
		t.Fatalf("efficiency ratios need revenue: got %v %v", r.ReceivablesTurnover, r.DaysSalesOutstanding)
	}
	if r.ProfitMargin != 0 || r.ExpenseRatio != 0 {
		t.Fatalf("profitability ratios need revenue: got %v %v", r.ProfitMargin, r.ExpenseRatio)
	}
}
