package building

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Mode selects how level costs are computed.
type Mode string

const (
	// ModeFlat prices each level from per-m² unit prices.
	ModeFlat Mode = "flat"
	// ModeDetailed scales a per-100 m² reference cost table.
	ModeDetailed Mode = "detailed"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeFlat || m == ModeDetailed
}

// DeductionMode tags how stairs and walls deductions are expressed.
type DeductionMode string

const (
	DeductionFixedM2 DeductionMode = "fixed_m2"
	DeductionPercent DeductionMode = "percent"
)

// Deduction converts a gross surface into a sellable surface. The mode is
// chosen once per project; the two forms are never mixed.
type Deduction struct {
	Mode   DeductionMode   `json:"mode"`
	Stairs decimal.Decimal `json:"stairs"`
	Walls  decimal.Decimal `json:"walls"`
}

// FixedM2 builds a deduction that removes fixed surfaces in m².
func FixedM2(stairs, walls decimal.Decimal) Deduction {
	return Deduction{Mode: DeductionFixedM2, Stairs: stairs, Walls: walls}
}

// Percent builds a deduction that removes percentages of the gross surface.
func Percent(stairsPct, wallsPct decimal.Decimal) Deduction {
	return Deduction{Mode: DeductionPercent, Stairs: stairsPct, Walls: wallsPct}
}

// Sellable returns the sellable part of gross, floored at zero. clamped
// reports whether the deductions exceeded gross and the floor applied.
func (d Deduction) Sellable(gross decimal.Decimal) (sellable decimal.Decimal, clamped bool) {
	var s decimal.Decimal
	switch d.Mode {
	case DeductionPercent:
		kept := decimal.NewFromInt(1).Sub(d.Stairs.Add(d.Walls).Div(hundred))
		s = gross.Mul(kept)
	default:
		s = gross.Sub(d.Stairs).Sub(d.Walls)
	}
	if s.IsNegative() {
		return decimal.Zero, true
	}
	return s, false
}

// String implements fmt.Stringer.
func (d Deduction) String() string {
	if d.Mode == DeductionPercent {
		return fmt.Sprintf("stairs %s%% + walls %s%%", d.Stairs, d.Walls)
	}
	return fmt.Sprintf("stairs %s m² + walls %s m²", d.Stairs, d.Walls)
}

// ConnectionPlacement says where the fixed utility connection fee is booked.
type ConnectionPlacement string

const (
	// PlacementDefault follows the mode: construction for detailed, investment for flat.
	PlacementDefault ConnectionPlacement = ""
	// PlacementConstruction folds the fee into gross works, so misc % applies to it.
	PlacementConstruction ConnectionPlacement = "construction"
	// PlacementInvestment adds the fee once to total investment.
	PlacementInvestment ConnectionPlacement = "investment"
)

// Parameters is the immutable project-wide snapshot one calculation runs on.
type Parameters struct {
	Mode Mode `json:"mode"`

	TerrainArea decimal.Decimal `json:"terrain_area"`
	FacadeCount int             `json:"facade_count"`
	COS         decimal.Decimal `json:"cos"`

	OverhangSurface  decimal.Decimal `json:"overhang_surface"`
	FacadeDeduction1 decimal.Decimal `json:"facade_deduction_1"`
	FacadeDeduction2 decimal.Decimal `json:"facade_deduction_2"`
	Deduction        Deduction       `json:"deduction"`

	LandPricePerM2     decimal.Decimal `json:"land_price_per_m2"`
	SalePricePerM2     decimal.Decimal `json:"sale_price_per_m2"`
	FoundationFlatRate decimal.Decimal `json:"foundation_flat_rate"`

	NotaryFees          decimal.Decimal     `json:"notary_fees"`
	MiscFeesPercent     decimal.Decimal     `json:"misc_fees_percent"`
	MiscFeesFixed       decimal.Decimal     `json:"misc_fees_fixed"`
	ConnectionFees      decimal.Decimal     `json:"connection_fees"`
	ConnectionPlacement ConnectionPlacement `json:"connection_placement"`
	StateTaxPercent     decimal.Decimal     `json:"state_tax_percent"`
}

// FacadeDeduction returns the deduction matching the façade count.
func (p Parameters) FacadeDeduction() decimal.Decimal {
	if p.FacadeCount == 1 {
		return p.FacadeDeduction1
	}
	return p.FacadeDeduction2
}

// EffectivePlacement resolves PlacementDefault against the mode.
func (p Parameters) EffectivePlacement() ConnectionPlacement {
	if p.ConnectionPlacement != PlacementDefault {
		return p.ConnectionPlacement
	}
	if p.Mode == ModeDetailed {
		return PlacementConstruction
	}
	return PlacementInvestment
}

// MaxAllowedSurface is the legally buildable surface, terrain area × COS.
func (p Parameters) MaxAllowedSurface() decimal.Decimal {
	return p.TerrainArea.Mul(p.COS)
}
