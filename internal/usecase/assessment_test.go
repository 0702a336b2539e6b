package usecase

import (
	"context"
	"errors"
	"testing"

	"FinSight/internal/analysis"
	"FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
	internalrepo "FinSight/internal/repository"
	applogger "FinSight/pkg/logger"
)

func testAssessor(t *testing.T) *Assessor {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewAssessor(
		analysis.NewRatioCalculator(),
		analysis.NewRiskAssessor(),
		analysis.NewCreditScorer(),
		analysis.NewBenchmarkComparator(analysis.DefaultBenchmarks()),
		analysis.NewRecommendationEngine(),
		analysis.NewForecastGenerator(),
		internalrepo.NewMemoryAssessmentStore(),
		internalrepo.NoopPublisher{},
		nil,
		l,
	)
}

func sampleSnapshot() models.FinancialSnapshot {
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

func TestAssessProducesFullBundle(t *testing.T) {
	a := testAssessor(t)
	ctx := context.Background()

	got, err := a.Assess(ctx, "acme-1", sampleSnapshot())
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if got.CompanyID != "acme-1" || got.Industry != models.IndustryServices {
		t.Fatalf("identity fields: %+v", got)
	}
	if got.OverallScore != got.Credit.Score || got.Rating != got.Credit.Rating {
		t.Fatalf("overall must mirror the credit assessment")
	}
	if got.OverallScore < 70 || got.OverallScore > 90 {
		t.Fatalf("score for healthy services company: %v", got.OverallScore)
	}
	if got.Risk.Level != models.RiskMinimal {
		t.Fatalf("risk level: %s", got.Risk.Level)
	}
	if len(got.Benchmark.Metrics) != 5 {
		t.Fatalf("benchmark metrics: %d", len(got.Benchmark.Metrics))
	}
	if len(got.CostSavings) < 2 {
		t.Fatalf("cost savings: %+v", got.CostSavings)
	}
	if got.AssessedAt.IsZero() {
		t.Fatalf("assessed_at must be set")
	}
}

func TestDashboardReturnsLatest(t *testing.T) {
	a := testAssessor(t)
	ctx := context.Background()

	if _, err := a.Dashboard(ctx, "missing"); !errors.Is(err, domrepo.ErrNotFound) {
		t.Fatalf("missing company: got err %v", err)
	}

	first, _ := a.Assess(ctx, "acme-1", sampleSnapshot())
	s := sampleSnapshot()
	s.RevenueGrowthRate = 0.25
	second, err := a.Assess(ctx, "acme-1", s)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	d, err := a.Dashboard(ctx, "acme-1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Assessment.OverallScore != second.OverallScore {
		t.Fatalf("dashboard should surface the newest assessment: got %v, first %v, second %v",
			d.Assessment.OverallScore, first.OverallScore, second.OverallScore)
	}
	if d.Placement == "" {
		t.Fatalf("placement missing")
	}
}

func TestForecastNeedsHistory(t *testing.T) {
	a := testAssessor(t)
	ctx := context.Background()

	if _, err := a.Forecast(ctx, "acme-1", 6); !errors.Is(err, domrepo.ErrNotFound) {
		t.Fatalf("no history: got err %v", err)
	}

	if _, err := a.Assess(ctx, "acme-1", sampleSnapshot()); err != nil {
		t.Fatalf("assess: %v", err)
	}
	if _, err := a.Forecast(ctx, "acme-1", 6); !errors.Is(err, analysis.ErrInsufficientData) {
		t.Fatalf("one assessment: got err %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := a.Assess(ctx, "acme-1", sampleSnapshot()); err != nil {
			t.Fatalf("assess: %v", err)
		}
	}
	f, err := a.Forecast(ctx, "acme-1", 6)
	if err != nil {
		t.Fatalf("forecast with 3 assessments: %v", err)
	}
	if len(f.Points) != 6 {
		t.Fatalf("forecast points: got %d want 6", len(f.Points))
	}
}

func TestIndustryBenchmarksPassthrough(t *testing.T) {
	a := testAssessor(t)
	if _, ok := a.IndustryBenchmarks("mining"); ok {
		t.Fatalf("unknown industry should not resolve")
	}
	q, ok := a.IndustryBenchmarks(models.IndustryServices)
	if !ok || len(q) != 5 {
		t.Fatalf("services benchmarks: ok=%v len=%d", ok, len(q))
	}
}
