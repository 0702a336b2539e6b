package models

import (
	"encoding/json"
	"math"
)

// RatioSet holds the derived, dimensionless view of a snapshot. Immutable once
// computed. CurrentRatio and QuickRatio are +Inf when current liabilities are
// zero; every other ratio degrades to 0 on a zero denominator.
type RatioSet struct {
	CurrentRatio         float64
	QuickRatio           float64
	ProfitMargin         float64
	ExpenseRatio         float64
	ROA                  float64
	DebtToAssetRatio     float64
	EquityRatio          float64
	ReceivablesTurnover  float64
	DaysSalesOutstanding float64
	RevenueGrowthRate    float64
}

// ratioFields fixes wire names independently of Go field names.
var ratioFields = []struct {
	name string
	get  func(*RatioSet) *float64
}{
	{"current_ratio", func(r *RatioSet) *float64 { return &r.CurrentRatio }},
	{"quick_ratio", func(r *RatioSet) *float64 { return &r.QuickRatio }},
	{"profit_margin", func(r *RatioSet) *float64 { return &r.ProfitMargin }},
	{"expense_ratio", func(r *RatioSet) *float64 { return &r.ExpenseRatio }},
	{"roa", func(r *RatioSet) *float64 { return &r.ROA }},
	{"debt_to_asset_ratio", func(r *RatioSet) *float64 { return &r.DebtToAssetRatio }},
	{"equity_ratio", func(r *RatioSet) *float64 { return &r.EquityRatio }},
	{"receivables_turnover", func(r *RatioSet) *float64 { return &r.ReceivablesTurnover }},
	{"days_sales_outstanding", func(r *RatioSet) *float64 { return &r.DaysSalesOutstanding }},
	{"revenue_growth_rate", func(r *RatioSet) *float64 { return &r.RevenueGrowthRate }},
}

// MarshalJSON emits the sentinel string "Infinity" for unbounded ratios;
// encoding/json rejects raw IEEE infinities.
func (r RatioSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(ratioFields))
	for _, f := range ratioFields {
		v := *f.get(&r)
		if math.IsInf(v, 1) {
			out[f.name] = "Infinity"
			continue
		}
		out[f.name] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts both numeric values and the "Infinity" sentinel, so a
// stored assessment round-trips losslessly.
func (r *RatioSet) UnmarshalJSON(b []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, f := range ratioFields {
		rv, ok := raw[f.name]
		if !ok {
			continue
		}
		dst := f.get(r)
		var s string
		if err := json.Unmarshal(rv, &s); err == nil {
			if s == "Infinity" {
				*dst = math.Inf(1)
			}
			continue
		}
		if err := json.Unmarshal(rv, dst); err != nil {
			return err
		}
	}
	return nil
}
