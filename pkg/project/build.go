package project

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
)

// ErrNotFinite is returned by Build when an amount is NaN or infinite.
var ErrNotFinite = errors.New("value must be a finite number")

// levelNamespace scopes the name-based level IDs.
var levelNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/kwicl/Skyara-App/levels"))

// LevelID derives the stable ID of an unnamed level from its position,
// kind and name.
func LevelID(index int, kind, name string) string {
	return uuid.NewSHA1(levelNamespace, []byte(fmt.Sprintf("%d:%s:%s", index, kind, name))).String()
}

// TerrainArea returns the declared area, or the surveyed polygon's area when
// no area is declared.
func (f *File) TerrainArea() float64 {
	if f.Terrain.Area == 0 {
		if p := f.Terrain.Parcel(); !p.IsEmpty() {
			return p.Area()
		}
	}
	return f.Terrain.Area
}

// Number is one numeric field of the file and its path.
type Number struct {
	Path  string
	Value float64
}

// Finite reports whether the value is neither NaN nor infinite.
func (n Number) Finite() bool {
	return !math.IsNaN(n.Value) && !math.IsInf(n.Value, 0)
}

// Numbers lists every numeric amount of the file, in document order.
func (f *File) Numbers() []Number {
	t, d, p, fees := f.Terrain, f.Deductions, f.Prices, f.Fees
	nums := []Number{{"terrain.area", t.Area}}
	for i, c := range t.Polygon {
		nums = append(nums,
			Number{fmt.Sprintf("terrain.polygon[%d].x", i), c.X},
			Number{fmt.Sprintf("terrain.polygon[%d].y", i), c.Y},
		)
	}
	nums = append(nums,
		Number{"terrain.cos", t.COS},
		Number{"deductions.facade_1", d.Facade1},
		Number{"deductions.facade_2", d.Facade2},
		Number{"deductions.overhang", d.Overhang},
		Number{"deductions.stairs", d.Stairs},
		Number{"deductions.walls", d.Walls},
		Number{"prices.land_per_m2", p.LandPerM2},
		Number{"prices.sale_per_m2", p.SalePerM2},
		Number{"prices.foundation_flat_rate", p.FoundationFlatRate},
		Number{"fees.notary", fees.Notary},
		Number{"fees.misc_percent", fees.MiscPercent},
		Number{"fees.misc_fixed", fees.MiscFixed},
		Number{"fees.connection", fees.Connection},
		Number{"fees.state_tax_percent", fees.StateTaxPercent},
	)
	if g := f.Building; g != nil {
		nums = append(nums,
			Number{"building.gross_works_price", g.GrossWorksPrice},
			Number{"building.finishing_price", g.FinishingPrice},
			Number{"building.terrace_price", g.TerracePrice},
			Number{"building.terrace_surface", g.TerraceSurface},
		)
	}
	for i, l := range f.Levels {
		path := fmt.Sprintf("levels[%d]", i)
		nums = append(nums,
			Number{path + ".surface", l.Surface},
			Number{path + ".gross_works_price", l.GrossWorksPrice},
			Number{path + ".finishing_price", l.FinishingPrice},
		)
	}
	return nums
}

// LevelSpecs returns the explicit levels, or the levels produced by the
// building generator when none are listed.
func (f *File) LevelSpecs() []LevelSpec {
	if len(f.Levels) > 0 || f.Building == nil {
		return f.Levels
	}
	g := f.Building
	specs := []LevelSpec{
		{Kind: string(building.KindFoundation), Name: "Fondations", GrossWorksPrice: f.Prices.FoundationFlatRate},
	}
	if g.Basement {
		specs = append(specs, LevelSpec{Kind: string(building.KindBasement), Name: "Sous-sol", GrossWorksPrice: g.GrossWorksPrice})
	}
	specs = append(specs, LevelSpec{
		Kind: string(building.KindGroundFloor), Name: "RDC",
		GrossWorksPrice: g.GrossWorksPrice, FinishingPrice: g.FinishingPrice,
	})
	for i := 1; i <= g.UpperFloors; i++ {
		specs = append(specs, LevelSpec{
			Kind: string(building.KindUpperFloor), Name: fmt.Sprintf("Etage %d", i),
			GrossWorksPrice: g.GrossWorksPrice, FinishingPrice: g.FinishingPrice,
		})
	}
	if g.Terrace {
		specs = append(specs, LevelSpec{
			Kind: string(building.KindUpperFloor), Name: "Terrasse", Terrace: true,
			Surface: g.TerraceSurface, GrossWorksPrice: g.TerracePrice, FinishingPrice: g.TerracePrice,
		})
	}
	return specs
}

// Build converts the file into the engine's parameter snapshot and level
// list. Structural checks belong to validation.ValidateSchema; Build only
// fails on amounts that are not finite or a level kind it cannot resolve.
func (f *File) Build() (building.Parameters, []building.Level, error) {
	for _, n := range f.Numbers() {
		if !n.Finite() {
			return building.Parameters{}, nil, fmt.Errorf("%s = %v: %w", n.Path, n.Value, ErrNotFinite)
		}
	}

	mode := building.Mode(f.Mode)
	if mode == "" {
		mode = building.ModeFlat
	}

	deduction := building.FixedM2(dec(f.Deductions.Stairs), dec(f.Deductions.Walls))
	if building.DeductionMode(f.Deductions.Mode) == building.DeductionPercent {
		deduction = building.Percent(dec(f.Deductions.Stairs), dec(f.Deductions.Walls))
	}

	p := building.Parameters{
		Mode:                mode,
		TerrainArea:         dec(f.TerrainArea()),
		FacadeCount:         f.Terrain.Facades,
		COS:                 dec(f.Terrain.COS),
		OverhangSurface:     dec(f.Deductions.Overhang),
		FacadeDeduction1:    dec(f.Deductions.Facade1),
		FacadeDeduction2:    dec(f.Deductions.Facade2),
		Deduction:           deduction,
		LandPricePerM2:      dec(f.Prices.LandPerM2),
		SalePricePerM2:      dec(f.Prices.SalePerM2),
		FoundationFlatRate:  dec(f.Prices.FoundationFlatRate),
		NotaryFees:          dec(f.Fees.Notary),
		MiscFeesPercent:     dec(f.Fees.MiscPercent),
		MiscFeesFixed:       dec(f.Fees.MiscFixed),
		ConnectionFees:      dec(f.Fees.Connection),
		ConnectionPlacement: building.ConnectionPlacement(f.Fees.ConnectionPlacement),
		StateTaxPercent:     dec(f.Fees.StateTaxPercent),
	}

	specs := f.LevelSpecs()
	levels := make([]building.Level, 0, len(specs))
	for i, s := range specs {
		kind, terrace, err := building.ParseKind(s.Kind)
		if err != nil {
			return building.Parameters{}, nil, fmt.Errorf("levels[%d]: %w", i, err)
		}
		id := s.ID
		if id == "" {
			id = LevelID(i, string(kind), s.Name)
		}
		levels = append(levels, building.Level{
			ID:                  id,
			Kind:                kind,
			Name:                s.Name,
			IsTerrace:           terrace || s.Terrace,
			DeclaredSurface:     dec(s.Surface),
			GrossWorksUnitPrice: dec(s.GrossWorksPrice),
			FinishingUnitPrice:  dec(s.FinishingPrice),
		})
	}
	return p, levels, nil
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
