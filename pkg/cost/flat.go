package cost

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/surface"
)

// estimateFlat prices a level from per-m² unit prices. Foundations use the
// project's flat rate on the whole terrain, whatever the level's own prices.
// Flat prices are supply-and-fit, so gross works are booked as materials.
func estimateFlat(p building.Parameters, l building.Level, s surface.Surface) Breakdown {
	var b Breakdown
	if l.Kind == building.KindFoundation {
		rate := p.FoundationFlatRate
		if rate.IsZero() {
			rate = DefaultFoundation
		}
		b.GrossWorksCost = p.TerrainArea.Mul(rate)
		b.FinishingCost = decimal.Zero
	} else {
		b.GrossWorksCost = s.Gross.Mul(l.GrossWorksUnitPrice)
		b.FinishingCost = s.Gross.Mul(l.FinishingUnitPrice)
	}
	b.Details = Details{Materials: b.GrossWorksCost, Finishing: b.FinishingCost}
	b.Categories = categories(
		Category{Name: CategoryGrossWorks, Amount: b.GrossWorksCost},
		Category{Name: CategoryFinishing, Amount: b.FinishingCost},
	)
	return b
}
