package models

// Requests for assessment HTTP endpoints. Defined in domain for consistency and reuse.

// AssessRequest carries one snapshot of raw figures. The boundary rejects
// negative monetary values, inconsistent totals, growth outside [-100%, 500%]
// and unknown industry tags; the engine never re-validates.
type AssessRequest struct {
	Industry           string  `json:"industry" validate:"required,oneof=manufacturing retail services agriculture logistics e-commerce"`
	Revenue            float64 `json:"revenue" validate:"gte=0"`
	TotalExpenses      float64 `json:"total_expenses" validate:"gte=0"`
	CurrentAssets      float64 `json:"current_assets" validate:"gte=0,ltefield=TotalAssets"`
	CurrentLiabilities float64 `json:"current_liabilities" validate:"gte=0"`
	TotalAssets        float64 `json:"total_assets" validate:"gte=0"`
	TotalDebt          float64 `json:"total_debt" validate:"gte=0,ltefield=TotalAssets"`
	Inventory          float64 `json:"inventory" validate:"gte=0"`
	AccountsReceivable float64 `json:"accounts_receivable" validate:"gte=0"`
	AccountsPayable    float64 `json:"accounts_payable" validate:"gte=0"`
	RevenueGrowthRate  float64 `json:"revenue_growth_rate" validate:"gte=-1,lte=5"`
}

// Snapshot converts the validated request into the engine input record.
func (r *AssessRequest) Snapshot() FinancialSnapshot {
	return FinancialSnapshot{
		Industry:           r.Industry,
		Revenue:            r.Revenue,
		TotalExpenses:      r.TotalExpenses,
		CurrentAssets:      r.CurrentAssets,
		CurrentLiabilities: r.CurrentLiabilities,
		TotalAssets:        r.TotalAssets,
		TotalDebt:          r.TotalDebt,
		Inventory:          r.Inventory,
		AccountsReceivable: r.AccountsReceivable,
		AccountsPayable:    r.AccountsPayable,
		RevenueGrowthRate:  r.RevenueGrowthRate,
	}
}

// ForecastRequest bounds the projection horizon the way the dashboard expects.
type ForecastRequest struct {
	Months int `query:"months" json:"months" default:"12" validate:"gte=1,lte=24"`
}
