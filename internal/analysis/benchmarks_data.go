package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"FinSight/internal/domain/models"
)

// Benchmark metric keys. These are the five ratios tracked per industry.
const (
	MetricCurrentRatio = "current_ratio"
	MetricProfitMargin = "profit_margin"
	MetricDebtToAsset  = "debt_to_asset_ratio"
	MetricGrowthRate   = "revenue_growth_rate"
	MetricDSO          = "days_sales_outstanding"
)

// DefaultBenchmarks returns the built-in industry quartile table. Callers must
// treat the result as read-only; it is built once at startup and shared.
func DefaultBenchmarks() models.BenchmarkTable {
	return models.BenchmarkTable{
		models.IndustryManufacturing: {
			MetricCurrentRatio: {Q1: 1.2, Median: 1.8, Q3: 2.5},
			MetricProfitMargin: {Q1: 0.08, Median: 0.12, Q3: 0.18},
			MetricDebtToAsset:  {Q1: 0.30, Median: 0.45, Q3: 0.60},
			MetricGrowthRate:   {Q1: 0.03, Median: 0.08, Q3: 0.15},
			MetricDSO:          {Q1: 30, Median: 45, Q3: 60},
		},
		models.IndustryRetail: {
			MetricCurrentRatio: {Q1: 1.0, Median: 1.5, Q3: 2.2},
			MetricProfitMargin: {Q1: 0.04, Median: 0.08, Q3: 0.12},
			MetricDebtToAsset:  {Q1: 0.35, Median: 0.50, Q3: 0.65},
			MetricGrowthRate:   {Q1: 0.02, Median: 0.06, Q3: 0.12},
			MetricDSO:          {Q1: 10, Median: 15, Q3: 25},
		},
		models.IndustryServices: {
			MetricCurrentRatio: {Q1: 1.3, Median: 2.0, Q3: 3.0},
			MetricProfitMargin: {Q1: 0.10, Median: 0.15, Q3: 0.22},
			MetricDebtToAsset:  {Q1: 0.20, Median: 0.35, Q3: 0.50},
			MetricGrowthRate:   {Q1: 0.05, Median: 0.12, Q3: 0.20},
			MetricDSO:          {Q1: 25, Median: 35, Q3: 50},
		},
		models.IndustryAgriculture: {
			MetricCurrentRatio: {Q1: 1.1, Median: 1.6, Q3: 2.3},
			MetricProfitMargin: {Q1: 0.05, Median: 0.10, Q3: 0.16},
			MetricDebtToAsset:  {Q1: 0.40, Median: 0.55, Q3: 0.70},
			MetricGrowthRate:   {Q1: -0.02, Median: 0.04, Q3: 0.10},
			MetricDSO:          {Q1: 20, Median: 30, Q3: 45},
		},
		models.IndustryLogistics: {
			MetricCurrentRatio: {Q1: 1.0, Median: 1.4, Q3: 1.9},
			MetricProfitMargin: {Q1: 0.03, Median: 0.06, Q3: 0.10},
			MetricDebtToAsset:  {Q1: 0.45, Median: 0.60, Q3: 0.75},
			MetricGrowthRate:   {Q1: 0.04, Median: 0.10, Q3: 0.18},
			MetricDSO:          {Q1: 30, Median: 40, Q3: 55},
		},
		models.IndustryECommerce: {
			MetricCurrentRatio: {Q1: 0.9, Median: 1.3, Q3: 1.8},
			MetricProfitMargin: {Q1: 0.01, Median: 0.05, Q3: 0.12},
			MetricDebtToAsset:  {Q1: 0.25, Median: 0.40, Q3: 0.55},
			MetricGrowthRate:   {Q1: 0.10, Median: 0.25, Q3: 0.45},
			MetricDSO:          {Q1: 15, Median: 20, Q3: 30},
		},
	}
}

// LoadBenchmarks reads a quartile table from a YAML file, falling back to the
// built-in defaults for any industry/metric the file does not override.
func LoadBenchmarks(path string) (models.BenchmarkTable, error) {
	table := DefaultBenchmarks()
	if path == "" {
		return table, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmarks: %w", err)
	}
	var override models.BenchmarkTable
	if err := yaml.Unmarshal(b, &override); err != nil {
		return nil, fmt.Errorf("parse benchmarks: %w", err)
	}
	for industry, metrics := range override {
		if _, ok := table[industry]; !ok {
			table[industry] = map[string]models.Quartiles{}
		}
		for metric, q := range metrics {
			table[industry][metric] = q
		}
	}
	return table, nil
}

// industryInsights are the fixed per-industry narrative lines.
var industryInsights = map[string][]string{
	models.IndustryManufacturing: {
		"Manufacturing businesses typically require higher working capital",
		"Focus on inventory management and production efficiency",
		"Asset utilization is crucial for profitability",
	},
	models.IndustryRetail: {
		"Retail businesses have seasonal variations in performance",
		"Inventory turnover is a key success metric",
		"Location and customer experience drive revenue",
	},
	models.IndustryServices: {
		"Service businesses typically have higher profit margins",
		"Human capital is the primary asset",
		"Scalability depends on process optimization",
	},
	models.IndustryAgriculture: {
		"Agricultural businesses face weather and commodity price risks",
		"Seasonal cash flow patterns are normal",
		"Government policies significantly impact profitability",
	},
	models.IndustryLogistics: {
		"Logistics businesses are capital intensive",
		"Fuel costs and route optimization are critical",
		"Technology adoption drives efficiency gains",
	},
	models.IndustryECommerce: {
		"E-commerce businesses prioritize growth over immediate profitability",
		"Customer acquisition costs are typically high initially",
		"Technology and marketing investments are essential",
	},
}

// industryKPIs are the indicators surfaced on the benchmark detail endpoint.
var industryKPIs = map[string][]string{
	models.IndustryManufacturing: {"inventory_turnover", "asset_turnover", "capacity_utilization"},
	models.IndustryRetail:        {"inventory_turnover", "sales_per_sqft", "customer_acquisition_cost"},
	models.IndustryServices:      {"utilization_rate", "customer_retention", "revenue_per_employee"},
	models.IndustryAgriculture:   {"yield_per_acre", "seasonal_variance", "weather_dependency"},
	models.IndustryLogistics:     {"fleet_utilization", "delivery_efficiency", "fuel_cost_ratio"},
	models.IndustryECommerce:     {"conversion_rate", "customer_lifetime_value", "cart_abandonment_rate"},
}

// IndustryKPIs returns the indicator names tracked for an industry.
func IndustryKPIs(industry string) []string {
	return industryKPIs[industry]
}

// IndustryInsights returns the fixed narrative lines for an industry.
func IndustryInsights(industry string) []string {
	return industryInsights[industry]
}

// focusPhrases map a below-p25 metric to its fixed remediation phrase.
var focusPhrases = map[string]string{
	MetricCurrentRatio: "Improve working capital management",
	MetricProfitMargin: "Optimize cost structure and pricing",
	MetricDebtToAsset:  "Reduce debt levels or increase assets",
	MetricGrowthRate:   "Develop growth strategies",
	MetricDSO:          "Improve collections and credit policies",
}

// metricDisplayNames render metric keys for narrative text.
var metricDisplayNames = map[string]string{
	MetricCurrentRatio: "Current Ratio",
	MetricProfitMargin: "Profit Margin",
	MetricDebtToAsset:  "Debt-to-Asset Ratio",
	MetricGrowthRate:   "Revenue Growth Rate",
	MetricDSO:          "Days Sales Outstanding",
}
