package cost

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
)

// estimateDetailed scales the reference table by terrainArea / referenceSurface.
// A level kind the table has no entry for costs zero and is marked Unpriced.
func estimateDetailed(p building.Parameters, l building.Level, ref *Reference) Breakdown {
	entry, err := ref.For(l)
	if err != nil {
		return Breakdown{Unpriced: true, Categories: []Category{}}
	}

	ratio := ref.ratio(p.TerrainArea)
	structural := ratio
	basement := l.Kind == building.KindBasement && !l.IsTerrace
	if basement {
		structural = ratio.Mul(decimal.NewFromFloat(ref.BasementMultiplier))
	}

	labor := decimal.NewFromFloat(entry.Labor).Mul(structural)
	materials, materialCats := scaleItems(entry.Materials, structural)

	var b Breakdown
	b.Details.Labor = labor
	b.Details.Materials = materials
	cats := append([]Category{{Name: CategoryLabor, Amount: labor}}, materialCats...)

	switch {
	case l.Kind == building.KindFoundation, basement:
		b.GrossWorksCost = labor.Add(materials)
		b.FinishingCost = decimal.Zero
	case l.IsTerrace:
		finishing, finishingCats := scaleItems(entry.Finishing, ratio)
		b.Details.Finishing = finishing
		b.GrossWorksCost = labor.Add(materials)
		b.FinishingCost = finishing
		cats = append(cats, finishingCats...)
	default:
		equipment, equipmentCats := scaleItems(entry.Equipment, ratio)
		finishing, finishingCats := scaleItems(entry.Finishing, ratio)
		b.Details.Equipment = equipment
		b.Details.Finishing = finishing
		b.GrossWorksCost = labor.Add(materials).Add(equipment)
		b.FinishingCost = finishing
		cats = append(cats, equipmentCats...)
		cats = append(cats, finishingCats...)
	}

	b.Categories = categories(cats...)
	return b
}

func scaleItems(items []LineItem, factor decimal.Decimal) (decimal.Decimal, []Category) {
	total := decimal.Zero
	cats := make([]Category, 0, len(items))
	for _, it := range items {
		amount := decimal.NewFromFloat(it.Amount).Mul(factor)
		total = total.Add(amount)
		cats = append(cats, Category{Name: it.Name, Amount: amount})
	}
	return total, cats
}
