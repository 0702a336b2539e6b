package analysis

import (
	"fmt"
	"strings"

	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
)

// trackedMetrics fixes the comparison order so narratives and focus areas are
// deterministic (map iteration is not).
var trackedMetrics = []struct {
	key string
	get func(models.RatioSet) float64
}{
	{MetricCurrentRatio, func(r models.RatioSet) float64 { return r.CurrentRatio }},
	{MetricProfitMargin, func(r models.RatioSet) float64 { return r.ProfitMargin }},
	{MetricDebtToAsset, func(r models.RatioSet) float64 { return r.DebtToAssetRatio }},
	{MetricGrowthRate, func(r models.RatioSet) float64 { return r.RevenueGrowthRate }},
	{MetricDSO, func(r models.RatioSet) float64 { return r.DaysSalesOutstanding }},
}

// BenchmarkComparator ranks company ratios inside the industry quartile
// spread. The table is injected at construction and never mutated, so one
// comparator serves any number of concurrent requests.
type BenchmarkComparator struct {
	table models.BenchmarkTable
}

func NewBenchmarkComparator(table models.BenchmarkTable) *BenchmarkComparator {
	return &BenchmarkComparator{table: table}
}

func (b *BenchmarkComparator) CompareWithIndustry(industry string, r models.RatioSet) models.BenchmarkComparison {
	key := strings.ToLower(industry)
	industryData, ok := b.table[key]
	if !ok {
		// recovery policy per the unknown-industry contract, not an error
		key = models.IndustryServices
		industryData = b.table[key]
	}

	out := models.BenchmarkComparison{
		Industry:   industry,
		Metrics:    make(map[string]models.MetricComparison, len(trackedMetrics)),
		FocusAreas: []string{},
	}

	var sum float64
	var n int
	for _, m := range trackedMetrics {
		q, ok := industryData[m.key]
		if !ok {
			continue
		}
		value := m.get(r)
		pct := Percentile(value, q)
		out.Metrics[m.key] = models.MetricComparison{
			CompanyValue: value,
			Q1:           q.Q1,
			Median:       q.Median,
			Q3:           q.Q3,
			Percentile:   pct,
			Performance:  PerformanceRating(pct),
			Summary:      comparisonText(m.key, pct, value, q),
		}
		sum += pct
		n++
		if pct < 25 {
			if phrase, ok := focusPhrases[m.key]; ok {
				out.FocusAreas = append(out.FocusAreas, phrase)
			}
		}
	}

	if n > 0 {
		out.OverallPercentile = sum / float64(n)
	}
	out.OverallPerformance = PerformanceRating(out.OverallPercentile)
	out.Insights = insights(key, out.OverallPercentile)
	return out
}

// IndustryBenchmarks exposes the raw quartile table for one industry.
func (b *BenchmarkComparator) IndustryBenchmarks(industry string) (map[string]models.Quartiles, bool) {
	q, ok := b.table[strings.ToLower(industry)]
	return q, ok
}

// Percentile places a value in [0,100] by four-piece linear interpolation over
// the quartile triple. Monotonically non-decreasing in value for any fixed
// triple.
func Percentile(value float64, q models.Quartiles) float64 {
	switch {
	case value <= q.Q1:
		if q.Q1 <= 0 {
			return 0
		}
		return max(0, 25*(value/q.Q1))
	case value <= q.Median:
		if q.Median <= q.Q1 {
			return 25
		}
		return 25 + 25*(value-q.Q1)/(q.Median-q.Q1)
	case value <= q.Q3:
		if q.Q3 <= q.Median {
			return 50
		}
		return 50 + 25*(value-q.Median)/(q.Q3-q.Median)
	default:
		if q.Q3 <= 0 {
			return 75
		}
		return min(100, 75+25*(value-q.Q3)/q.Q3)
	}
}

// PerformanceRating buckets a percentile into the four performance bands.
func PerformanceRating(percentile float64) string {
	switch {
	case percentile >= 75:
		return "Excellent"
	case percentile >= 50:
		return "Above Average"
	case percentile >= 25:
		return "Below Average"
	default:
		return "Poor"
	}
}

func comparisonText(metric string, percentile, value float64, q models.Quartiles) string {
	name := metricDisplayNames[metric]
	switch {
	case percentile >= 75:
		return fmt.Sprintf("Your %s of %.2f is excellent, ranking in the top 25%% of %s performers in your industry.",
			name, value, strings.ToLower(name))
	case percentile >= 50:
		return fmt.Sprintf("Your %s of %.2f is above the industry median of %.2f.", name, value, q.Median)
	case percentile >= 25:
		return fmt.Sprintf("Your %s of %.2f is below the industry median of %.2f and needs improvement.", name, value, q.Median)
	default:
		return fmt.Sprintf("Your %s of %.2f is significantly below industry standards and requires immediate attention.", name, value)
	}
}

func insights(industry string, overallPercentile float64) []string {
	out := append([]string{}, industryInsights[industry]...)
	switch {
	case overallPercentile >= 75:
		out = append(out, "Your business is performing exceptionally well compared to industry peers.")
	case overallPercentile >= 50:
		out = append(out, "Your business performance is solid with room for optimization.")
	default:
		out = append(out, "Consider industry best practices to improve your competitive position.")
	}
	return out
}

var _ domsvc.BenchmarkComparator = (*BenchmarkComparator)(nil)
