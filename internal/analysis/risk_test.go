package analysis

import (
	"testing"

	"FinSight/internal/domain/models"
)

func TestAssessRisksHealthy(t *testing.T) {
	s := healthySnapshot()
	r := NewRatioCalculator().CalculateRatios(s)
	p := NewRiskAssessor().AssessRisks(s, r)

	if p.Score != 0 {
		t.Fatalf("healthy company risk score: got %d want 0 (risks %v)", p.Score, p.Risks)
	}
	if p.Level != models.RiskMinimal {
		t.Fatalf("level: got %s want MINIMAL", p.Level)
	}
	if len(p.Risks) != 0 {
		t.Fatalf("risks: got %v", p.Risks)
	}
	if p.Factors.Liquidity || p.Factors.Leverage || p.Factors.Profitability || p.Factors.Growth {
		t.Fatalf("factors should all be clear: %+v", p.Factors)
	}
}

func TestAssessRisksDistressed(t *testing.T) {
	s := models.FinancialSnapshot{
		Industry:           models.IndustryRetail,
		Revenue:            500_000,
		TotalExpenses:      600_000,
		CurrentAssets:      100_000,
		CurrentLiabilities: 200_000,
		TotalAssets:        400_000,
		TotalDebt:          360_000,
		AccountsReceivable: 200_000,
		RevenueGrowthRate:  -0.10,
	}
	r := NewRatioCalculator().CalculateRatios(s)
	p := NewRiskAssessor().AssessRisks(s, r)

	// current 0.5 -> 25, debt 0.9 -> 30, loss -> 35, declining -> 25, AR > 25% of revenue -> 15
	if want := 130; p.Score != want {
		t.Fatalf("risk score: got %d want %d (risks %v)", p.Score, want, p.Risks)
	}
	if p.Level != models.RiskHigh {
		t.Fatalf("level: got %s want HIGH", p.Level)
	}
	if len(p.Risks) != 5 {
		t.Fatalf("risk narratives: got %d want 5: %v", len(p.Risks), p.Risks)
	}
	if !p.Factors.Liquidity || !p.Factors.Leverage || !p.Factors.Profitability || !p.Factors.Growth {
		t.Fatalf("all factors should flag: %+v", p.Factors)
	}
}

func TestAssessRisksModerateBands(t *testing.T) {
	s := healthySnapshot()
	s.CurrentAssets = 260_000 // current ratio 1.3
	s.TotalDebt = 840_000     // debt to asset 0.7
	s.TotalExpenses = 970_000 // margin 0.03
	s.RevenueGrowthRate = 0.02
	r := NewRatioCalculator().CalculateRatios(s)
	p := NewRiskAssessor().AssessRisks(s, r)

	// moderate liquidity 15 + moderate leverage 20 + low margins 20 + slow growth 10
	if want := 65; p.Score != want {
		t.Fatalf("risk score: got %d want %d (risks %v)", p.Score, want, p.Risks)
	}
	if p.Level != models.RiskMedium {
		t.Fatalf("level: got %s want MEDIUM", p.Level)
	}
}

func TestRiskLevelBuckets(t *testing.T) {
	cases := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskMinimal},
		{19, models.RiskMinimal},
		{20, models.RiskLow},
		{39, models.RiskLow},
		{40, models.RiskMedium},
		{69, models.RiskMedium},
		{70, models.RiskHigh},
		{130, models.RiskHigh},
	}
	for _, c := range cases {
		if got := riskLevel(c.score); got != c.want {
			t.Fatalf("riskLevel(%d): got %s want %s", c.score, got, c.want)
		}
	}
}
