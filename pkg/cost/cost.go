// Package cost prices each level of a building and aggregates the project
// totals: investment, revenue, tax, profit and margin.
package cost

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/surface"
)

// Details splits a level cost into its four structural parts.
type Details struct {
	Labor     decimal.Decimal `json:"labor"`
	Materials decimal.Decimal `json:"materials"`
	Equipment decimal.Decimal `json:"equipment"`
	Finishing decimal.Decimal `json:"finishing"`
}

// Category is one named amount of a breakdown, in reporting order.
type Category struct {
	Name   string          `json:"category"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown is the priced result of a single level.
type Breakdown struct {
	LevelID   string        `json:"level_id"`
	LevelName string        `json:"level_name"`
	Kind      building.Kind `json:"kind"`
	IsTerrace bool          `json:"is_terrace"`

	GrossSurface    decimal.Decimal `json:"gross_surface"`
	SellableSurface decimal.Decimal `json:"sellable_surface"`
	Clamped         bool            `json:"clamped,omitempty"`
	// Unpriced marks a level the reference table has no entry for; its costs are zero.
	Unpriced bool `json:"unpriced,omitempty"`

	GrossWorksCost decimal.Decimal `json:"gross_works_cost"`
	FinishingCost  decimal.Decimal `json:"finishing_cost"`
	Total          decimal.Decimal `json:"total"`
	Details        Details         `json:"details"`
	Categories     []Category      `json:"categories"`
}

// Materials holds the informational material quantity estimates.
type Materials struct {
	SteelKg    decimal.Decimal `json:"steel_kg"`
	CementBags decimal.Decimal `json:"cement_bags"`
	Bricks     decimal.Decimal `json:"bricks"`
	ConcreteM3 decimal.Decimal `json:"concrete_m3"`
}

// Totals is the aggregated project result.
type Totals struct {
	GrossWorksTotal  decimal.Decimal `json:"gross_works_total"`
	FinishingTotal   decimal.Decimal `json:"finishing_total"`
	ConstructionCost decimal.Decimal `json:"construction_cost"`

	LandCost             decimal.Decimal              `json:"land_cost"`
	NotaryFees           decimal.Decimal              `json:"notary_fees"`
	MiscFeesPercentValue decimal.Decimal              `json:"misc_fees_percent_value"`
	MiscFeesFixed        decimal.Decimal              `json:"misc_fees_fixed"`
	ConnectionFees       decimal.Decimal              `json:"connection_fees"`
	ConnectionPlacement  building.ConnectionPlacement `json:"connection_placement"`
	TotalInvestment      decimal.Decimal              `json:"total_investment"`

	TotalSellableSurface decimal.Decimal `json:"total_sellable_surface"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	GrossProfit          decimal.Decimal `json:"gross_profit"`
	StateTax             decimal.Decimal `json:"state_tax"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	MarginPercentage     decimal.Decimal `json:"margin_percentage"`

	CostPerBuiltM2      decimal.Decimal `json:"cost_per_built_m2"`
	BreakEvenPricePerM2 decimal.Decimal `json:"break_even_price_per_m2"`
	ReturnOnInvestment  decimal.Decimal `json:"return_on_investment"`

	TotalSurface      decimal.Decimal `json:"total_surface"`
	Materials         Materials       `json:"materials"`
	MaxAllowedSurface decimal.Decimal `json:"max_allowed_surface"`
	IsOverCOS         bool            `json:"is_over_cos"`
}

// Result is the complete engine output.
type Result struct {
	Mode   building.Mode `json:"mode"`
	Levels []Breakdown   `json:"levels"`
	Totals Totals        `json:"totals"`
}

// Estimate runs the full pipeline: surfaces, per-level costs, totals.
// ref is only consulted in detailed mode; nil selects the default table.
// The function is pure: identical input yields identical output.
func Estimate(p building.Parameters, levels []building.Level, ref *Reference) *Result {
	if p.Mode == building.ModeDetailed && ref == nil {
		ref = DefaultReference()
	}

	surfaces := surface.Derive(p, levels)
	breakdowns := make([]Breakdown, len(levels))
	for i, l := range levels {
		var b Breakdown
		if p.Mode == building.ModeDetailed {
			b = estimateDetailed(p, l, ref)
		} else {
			b = estimateFlat(p, l, surfaces[i])
		}
		b.LevelID = l.ID
		b.LevelName = l.Name
		b.Kind = l.Kind
		b.IsTerrace = l.IsTerrace
		b.GrossSurface = surfaces[i].Gross
		b.SellableSurface = surfaces[i].Sellable
		b.Clamped = surfaces[i].Clamped
		b.Total = b.GrossWorksCost.Add(b.FinishingCost)
		breakdowns[i] = b
	}

	return &Result{
		Mode:   p.Mode,
		Levels: breakdowns,
		Totals: Aggregate(p, levels, breakdowns),
	}
}

// categories keeps only strictly positive amounts, preserving order.
func categories(pairs ...Category) []Category {
	out := make([]Category, 0, len(pairs))
	for _, c := range pairs {
		if c.Amount.IsPositive() {
			out = append(out, c)
		}
	}
	return out
}
