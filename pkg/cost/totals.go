package cost

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
)

// Aggregate reduces per-level breakdowns into project totals. levels and
// breakdowns are parallel slices.
func Aggregate(p building.Parameters, levels []building.Level, breakdowns []Breakdown) Totals {
	var t Totals

	grossWorks, finishing := decimal.Zero, decimal.Zero
	sellable, built := decimal.Zero, decimal.Zero
	for i, b := range breakdowns {
		grossWorks = grossWorks.Add(b.GrossWorksCost)
		finishing = finishing.Add(b.FinishingCost)
		if b.Kind != building.KindFoundation {
			sellable = sellable.Add(b.SellableSurface)
		}
		if i < len(levels) && levels[i].CountsAsBuilt() {
			built = built.Add(b.GrossSurface)
		}
	}

	t.ConnectionPlacement = p.EffectivePlacement()
	t.ConnectionFees = p.ConnectionFees
	if t.ConnectionPlacement == building.PlacementConstruction {
		grossWorks = grossWorks.Add(p.ConnectionFees)
	}

	t.GrossWorksTotal = grossWorks
	t.FinishingTotal = finishing
	t.ConstructionCost = grossWorks.Add(finishing)

	t.LandCost = p.TerrainArea.Mul(p.LandPricePerM2)
	t.NotaryFees = p.NotaryFees
	t.MiscFeesPercentValue = t.ConstructionCost.Mul(p.MiscFeesPercent).Div(hundred)
	t.MiscFeesFixed = p.MiscFeesFixed
	t.TotalInvestment = t.LandCost.
		Add(p.NotaryFees).
		Add(t.ConstructionCost).
		Add(t.MiscFeesPercentValue).
		Add(p.MiscFeesFixed)
	if t.ConnectionPlacement == building.PlacementInvestment {
		t.TotalInvestment = t.TotalInvestment.Add(p.ConnectionFees)
	}

	t.TotalSellableSurface = sellable
	t.TotalRevenue = sellable.Mul(p.SalePricePerM2)
	t.GrossProfit = t.TotalRevenue.Sub(t.TotalInvestment)
	t.StateTax = decimal.Zero
	if t.GrossProfit.IsPositive() {
		t.StateTax = t.GrossProfit.Mul(p.StateTaxPercent).Div(hundred)
	}
	t.NetProfit = t.GrossProfit.Sub(t.StateTax)
	t.MarginPercentage = percentOf(t.NetProfit, t.TotalRevenue)

	t.TotalSurface = built
	t.CostPerBuiltM2 = safeDiv(t.ConstructionCost, built)
	t.BreakEvenPricePerM2 = safeDiv(t.TotalInvestment, sellable)
	t.ReturnOnInvestment = percentOf(t.NetProfit, t.TotalInvestment)

	t.Materials = Materials{
		SteelKg:    built.Mul(SteelKgPerM2),
		CementBags: built.Mul(CementBagsPerM2),
		Bricks:     built.Mul(BricksPerM2),
		ConcreteM3: built.Mul(ConcreteM3PerM2),
	}
	t.MaxAllowedSurface = p.MaxAllowedSurface()
	t.IsOverCOS = built.GreaterThan(t.MaxAllowedSurface)

	return t
}

// safeDiv returns num/den, or zero when den is zero.
func safeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

func percentOf(num, den decimal.Decimal) decimal.Decimal {
	return safeDiv(num.Mul(hundred), den)
}
