package validation

import (
	"fmt"
	"math"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/project"
)

// ValidateSchema performs schema validation on a parsed project file.
// It checks structural correctness before any computation. Non-finite
// amounts are reported alone, since every other check compares them.
func ValidateSchema(f *project.File) *Report {
	r := NewReport()

	if !validateNumbers(f, r) {
		return r
	}
	validateMode(f, r)
	validateTerrain(f, r)
	validateDeductions(f, r)
	validateAmounts(f, r)
	validateFees(f, r)
	validateGenerator(f, r)
	validateLevels(f, r)

	return r
}

// validateNumbers rejects NaN and infinite amounts. ActualValue holds the
// text form so the report stays JSON-encodable.
func validateNumbers(f *project.File, r *Report) bool {
	ok := true
	for _, n := range f.Numbers() {
		if n.Finite() {
			continue
		}
		ok = false
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be a finite number", n.Path),
			SpecPath:    n.Path,
			ActualValue: fmt.Sprint(n.Value),
			Expected:    "finite number",
		})
	}
	return ok
}

func validateMode(f *project.File, r *Report) {
	if f.Mode != "" && !building.Mode(f.Mode).Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown mode %q", f.Mode),
			SpecPath:    "mode",
			ActualValue: f.Mode,
			Expected:    "flat | detailed",
		})
	}
	if f.Reference != "" && f.Mode != string(building.ModeDetailed) {
		r.AddInfo(Result{
			Level:    LevelSchema,
			Message:  "reference table is only used in detailed mode",
			SpecPath: "reference",
		})
	}
}

func validateTerrain(f *project.File, r *Report) {
	t := f.Terrain
	area := f.TerrainArea()
	if area <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "terrain area must be > 0",
			SpecPath:    "terrain.area",
			ActualValue: area,
			Expected:    "> 0",
			Suggestions: []string{"Set terrain.area, or give terrain.polygon with at least 3 corners"},
		})
	}

	if len(t.Polygon) > 0 {
		p := t.Parcel()
		if p.IsEmpty() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "terrain polygon needs at least 3 corners",
				SpecPath:    "terrain.polygon",
				ActualValue: len(t.Polygon),
				Expected:    ">= 3",
			})
		} else if t.Area > 0 && math.Abs(p.Area()-t.Area) > 0.01*t.Area {
			r.AddWarning(Result{
				Level:        LevelSchema,
				Message:      fmt.Sprintf("declared area %.2f m² differs from the surveyed polygon (%.2f m²)", t.Area, p.Area()),
				SpecPath:     "terrain.area",
				ActualValue:  t.Area,
				Expected:     fmt.Sprintf("%.2f (±1%%)", p.Area()),
				ConflictWith: "terrain.polygon",
			})
		}
	}

	if t.Facades != 1 && t.Facades != 2 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("facades must be 1 or 2 (got %d)", t.Facades),
			SpecPath:    "terrain.facades",
			ActualValue: t.Facades,
			Expected:    "1 | 2",
		})
	}
	if t.COS <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "cos must be > 0",
			SpecPath:    "terrain.cos",
			ActualValue: t.COS,
			Expected:    "> 0",
		})
	}
}

func validateDeductions(f *project.File, r *Report) {
	d := f.Deductions
	mode := building.DeductionMode(d.Mode)
	if d.Mode != "" && mode != building.DeductionFixedM2 && mode != building.DeductionPercent {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown deduction mode %q", d.Mode),
			SpecPath:    "deductions.mode",
			ActualValue: d.Mode,
			Expected:    "fixed_m2 | percent",
		})
	}

	values := []struct {
		path  string
		value float64
	}{
		{"deductions.facade_1", d.Facade1},
		{"deductions.facade_2", d.Facade2},
		{"deductions.overhang", d.Overhang},
		{"deductions.stairs", d.Stairs},
		{"deductions.walls", d.Walls},
	}
	for _, v := range values {
		requireNonNegative(r, v.path, v.value)
	}

	if mode == building.DeductionPercent && d.Stairs+d.Walls > 100 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("stairs and walls deductions add up to %.2f%%", d.Stairs+d.Walls),
			SpecPath:    "deductions",
			ActualValue: d.Stairs + d.Walls,
			Expected:    "<= 100",
		})
	}

	facade := d.Facade1
	if f.Terrain.Facades == 2 {
		facade = d.Facade2
	}
	if area := f.TerrainArea(); area > 0 && facade >= area {
		r.AddWarning(Result{
			Level:        LevelSchema,
			Message:      fmt.Sprintf("façade deduction %.2f m² leaves no ground-floor surface on a %.2f m² terrain", facade, area),
			SpecPath:     "deductions",
			ActualValue:  facade,
			ConflictWith: "terrain.area",
		})
	}
}

func validateAmounts(f *project.File, r *Report) {
	p := f.Prices
	requireNonNegative(r, "prices.land_per_m2", p.LandPerM2)
	requireNonNegative(r, "prices.sale_per_m2", p.SalePerM2)
	requireNonNegative(r, "prices.foundation_flat_rate", p.FoundationFlatRate)

	if p.SalePerM2 == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "sale price is 0; the project has no revenue",
			SpecPath: "prices.sale_per_m2",
		})
	}
}

func validateFees(f *project.File, r *Report) {
	fees := f.Fees
	requireNonNegative(r, "fees.notary", fees.Notary)
	requireNonNegative(r, "fees.misc_percent", fees.MiscPercent)
	requireNonNegative(r, "fees.misc_fixed", fees.MiscFixed)
	requireNonNegative(r, "fees.connection", fees.Connection)

	if fees.StateTaxPercent < 0 || fees.StateTaxPercent > 100 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("state_tax_percent %.2f must be between 0 and 100", fees.StateTaxPercent),
			SpecPath:    "fees.state_tax_percent",
			ActualValue: fees.StateTaxPercent,
			Expected:    "0-100",
		})
	}

	switch building.ConnectionPlacement(fees.ConnectionPlacement) {
	case building.PlacementDefault, building.PlacementConstruction, building.PlacementInvestment:
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown connection placement %q", fees.ConnectionPlacement),
			SpecPath:    "fees.connection_placement",
			ActualValue: fees.ConnectionPlacement,
			Expected:    `construction | investment | ""`,
		})
	}
}

func validateGenerator(f *project.File, r *Report) {
	g := f.Building
	if g == nil {
		return
	}
	if len(f.Levels) > 0 {
		r.AddWarning(Result{
			Level:        LevelSchema,
			Message:      "both levels and building are set; building is ignored",
			SpecPath:     "building",
			ConflictWith: "levels",
		})
		return
	}
	if g.UpperFloors < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "upper_floors must be >= 0",
			SpecPath:    "building.upper_floors",
			ActualValue: g.UpperFloors,
			Expected:    ">= 0",
		})
	}
}

func validateLevels(f *project.File, r *Report) {
	specs := f.LevelSpecs()
	if len(specs) == 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "project has no levels",
			SpecPath:    "levels",
			Expected:    "at least a foundation and a ground floor",
			Suggestions: []string{"List levels explicitly, or describe them with a building section"},
		})
		return
	}

	flat := f.Mode == "" || f.Mode == string(building.ModeFlat)
	counts := map[building.Kind]int{}
	ids := map[string]int{}
	for i, s := range specs {
		path := fmt.Sprintf("levels[%d]", i)

		kind, terrace, err := building.ParseKind(s.Kind)
		if err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): unknown kind %q", path, s.Name, s.Kind),
				SpecPath:    path + ".kind",
				ActualValue: s.Kind,
				Expected:    "foundation | ground_floor | upper_floor | basement | terrace",
			})
			continue
		}
		counts[kind]++

		if s.Terrace && !terrace && kind != building.KindUpperFloor {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s (%s): only upper floors can be terraces", path, s.Name),
				SpecPath:    path + ".terrace",
				ActualValue: s.Kind,
				Expected:    "upper_floor",
			})
		}

		if s.ID != "" {
			if prev, ok := ids[s.ID]; ok {
				r.AddError(Result{
					Level:        LevelSchema,
					Message:      fmt.Sprintf("%s: duplicate id %q", path, s.ID),
					SpecPath:     path + ".id",
					ActualValue:  s.ID,
					ConflictWith: fmt.Sprintf("levels[%d]", prev),
				})
			} else {
				ids[s.ID] = i
			}
		}

		requireNonNegative(r, path+".surface", s.Surface)
		requireNonNegative(r, path+".gross_works_price", s.GrossWorksPrice)
		requireNonNegative(r, path+".finishing_price", s.FinishingPrice)

		if flat && kind != building.KindFoundation && s.GrossWorksPrice == 0 && s.FinishingPrice == 0 {
			r.AddWarning(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("%s (%s): no unit prices in flat mode; level costs 0", path, s.Name),
				SpecPath: path,
			})
		}
	}

	if counts[building.KindFoundation] == 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "project needs at least one foundation level",
			SpecPath:    "levels",
			Suggestions: []string{"Add a level with kind: foundation"},
		})
	}
	if counts[building.KindGroundFloor] == 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "project needs at least one ground floor (RDC) level",
			SpecPath:    "levels",
			Suggestions: []string{"Add a level with kind: ground_floor"},
		})
	}
}

func requireNonNegative(r *Report, path string, v float64) {
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be >= 0", path),
			SpecPath:    path,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}
