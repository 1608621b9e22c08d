package cost

import "github.com/shopspring/decimal"

// Material quantity ratios per m² of built surface. Informational only;
// they never feed the cost calculation.
var (
	SteelKgPerM2      = decimal.NewFromInt(38)
	CementBagsPerM2   = decimal.RequireFromString("3.2")
	BricksPerM2       = decimal.NewFromInt(48)
	ConcreteM3PerM2   = decimal.RequireFromString("0.32")
	DefaultFoundation = decimal.NewFromInt(500) // DH/m², flat-mode foundation rate
)

// Category names used in breakdowns.
const (
	CategoryLabor      = "labor"
	CategoryGrossWorks = "gross_works"
	CategoryFinishing  = "finishing"
)

var hundred = decimal.NewFromInt(100)
