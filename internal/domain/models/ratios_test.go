package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestRatioSetMarshalInfinity(t *testing.T) {
	r := RatioSet{CurrentRatio: math.Inf(1), QuickRatio: math.Inf(1), ProfitMargin: 0.15}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"current_ratio":"Infinity"`) {
		t.Fatalf("infinity sentinel missing: %s", s)
	}
	if !strings.Contains(s, `"profit_margin":0.15`) {
		t.Fatalf("finite value mangled: %s", s)
	}
}

func TestRatioSetRoundTrip(t *testing.T) {
	in := RatioSet{
		CurrentRatio:         math.Inf(1),
		QuickRatio:           math.Inf(1),
		ProfitMargin:         0.15,
		ExpenseRatio:         0.85,
		ROA:                  0.125,
		DebtToAssetRatio:     0.30,
		EquityRatio:          0.70,
		ReceivablesTurnover:  6.5,
		DaysSalesOutstanding: 56.15,
		RevenueGrowthRate:    -0.02,
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out RatioSet
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsInf(out.CurrentRatio, 1) || !math.IsInf(out.QuickRatio, 1) {
		t.Fatalf("infinity lost in round trip: %+v", out)
	}
	in.CurrentRatio, out.CurrentRatio = 0, 0
	in.QuickRatio, out.QuickRatio = 0, 0
	if in != out {
		t.Fatalf("round trip mismatch:\n in %+v\nout %+v", in, out)
	}
}

func TestMetricComparisonInfinityRoundTrip(t *testing.T) {
	in := MetricComparison{
		CompanyValue: math.Inf(1),
		Q1:           1.3,
		Median:       2.0,
		Q3:           3.0,
		Percentile:   100,
		Performance:  "Excellent",
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"company_value":"Infinity"`) {
		t.Fatalf("sentinel missing: %s", b)
	}
	var out MetricComparison
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsInf(out.CompanyValue, 1) || out.Median != 2.0 || out.Performance != "Excellent" {
		t.Fatalf("round trip: %+v", out)
	}
}

func TestHealthAssessmentMarshalsWithInfiniteRatios(t *testing.T) {
	a := HealthAssessment{
		CompanyID: "acme",
		Industry:  IndustryServices,
		Ratios:    RatioSet{CurrentRatio: math.Inf(1), QuickRatio: math.Inf(1)},
		Benchmark: BenchmarkComparison{
			Metrics: map[string]MetricComparison{
				"current_ratio": {CompanyValue: math.Inf(1), Percentile: 100},
			},
		},
	}
	if _, err := json.Marshal(a); err != nil {
		t.Fatalf("assessment with infinite ratios must serialize: %v", err)
	}
}

func TestWeightVectorSum(t *testing.T) {
	w := WeightVector{Liquidity: 0.25, Profitability: 0.30, Leverage: 0.25, Efficiency: 0.10, Growth: 0.10}
	if math.Abs(w.Sum()-1.0) > 1e-12 {
		t.Fatalf("sum: got %v", w.Sum())
	}
}
