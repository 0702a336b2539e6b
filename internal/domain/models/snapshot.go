package models

// Industry tags with benchmark coverage. Anything else falls back to
// IndustryServices inside the engine.
const (
	IndustryManufacturing = "manufacturing"
	IndustryRetail        = "retail"
	IndustryServices      = "services"
	IndustryAgriculture   = "agriculture"
	IndustryLogistics     = "logistics"
	IndustryECommerce     = "e-commerce"
)

// Industries lists every industry with its own benchmark and weight profile.
var Industries = []string{
	IndustryManufacturing,
	IndustryRetail,
	IndustryServices,
	IndustryAgriculture,
	IndustryLogistics,
	IndustryECommerce,
}

// FinancialSnapshot is one period of raw figures for a single company.
// Monetary fields are non-negative and internally consistent by the time the
// engine sees them (the HTTP boundary validates); the engine still treats any
// zero denominator as a defined value, never an error.
type FinancialSnapshot struct {
	Industry           string
	Revenue            float64
	TotalExpenses      float64
	CurrentAssets      float64
	CurrentLiabilities float64
	TotalAssets        float64
	TotalDebt          float64
	Inventory          float64
	AccountsReceivable float64
	AccountsPayable    float64
	RevenueGrowthRate  float64 // fractional, 0.10 == 10%
}
