package cost

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/validation"
)

func TestCheckHealthyProject(t *testing.T) {
	report := Check(Estimate(flatParams(), flatLevels(), nil))
	if !report.Valid {
		t.Error("advisories must never invalidate a report")
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", report.Warnings)
	}
}

func TestCheckOverCOS(t *testing.T) {
	p := flatParams()
	p.COS = d("1")
	report := Check(Estimate(p, flatLevels(), nil))
	if !hasWarning(report.Warnings, "terrain.cos") {
		t.Errorf("expected a COS warning, got %v", report.Warnings)
	}
	if !report.Valid {
		t.Error("COS overrun is advisory only")
	}
}

func TestCheckLoss(t *testing.T) {
	p := flatParams()
	p.SalePricePerM2 = d("1000")
	report := Check(Estimate(p, flatLevels(), nil))
	if !hasWarning(report.Warnings, "prices.sale_per_m2") {
		t.Fatalf("expected a loss warning, got %v", report.Warnings)
	}
	for _, w := range report.Warnings {
		if w.SpecPath == "prices.sale_per_m2" {
			if len(w.Suggestions) != 1 || !strings.Contains(w.Suggestions[0], "4648") {
				t.Errorf("suggestions = %v, want the break-even price", w.Suggestions)
			}
		}
	}
}

func TestCheckNoSellable(t *testing.T) {
	levels := []building.Level{{ID: "f", Kind: building.KindFoundation, Name: "Fondations"}}
	report := Check(Estimate(flatParams(), levels, nil))
	if !hasWarning(report.Warnings, "levels") {
		t.Errorf("expected a no-sellable warning, got %v", report.Warnings)
	}
}

func TestCheckClampedLevels(t *testing.T) {
	p := flatParams()
	p.Deduction = building.FixedM2(d("80"), d("30"))
	report := Check(Estimate(p, flatLevels(), nil))
	// every non-foundation level is under 110 m² of deductions
	if len(report.Info) != 4 {
		t.Fatalf("expected 4 clamp notices, got %d", len(report.Info))
	}
	if report.Info[0].SpecPath != "levels[1]" {
		t.Errorf("first notice path = %q, want levels[1]", report.Info[0].SpecPath)
	}
}

func TestCheckExactDeductionIsNotClamped(t *testing.T) {
	p := flatParams()
	// RDC gross is 84 m²
	p.Deduction = building.FixedM2(d("64"), d("20"))
	res := Estimate(p, flatLevels(), nil)
	if !res.Levels[1].SellableSurface.IsZero() {
		t.Fatalf("RDC sellable = %s, want 0", res.Levels[1].SellableSurface)
	}
	for _, info := range Check(res).Info {
		if info.SpecPath == "levels[1]" {
			t.Errorf("RDC deductions equal its gross surface, got notice %q", info.Message)
		}
	}
}

func TestCheckUnpricedLevel(t *testing.T) {
	p := flatParams()
	p.Mode = building.ModeDetailed
	levels := append(flatLevels(), building.Level{ID: "x", Kind: building.Kind("attic"), Name: "Combles"})
	res := Estimate(p, levels, nil)

	last := res.Levels[len(res.Levels)-1]
	if !last.Unpriced {
		t.Fatal("level with no reference entry should be marked unpriced")
	}
	if !last.Total.IsZero() {
		t.Errorf("unpriced total = %s, want 0", last.Total)
	}
	path := fmt.Sprintf("levels[%d].kind", len(levels)-1)
	if !hasWarning(Check(res).Warnings, path) {
		t.Errorf("expected an unpriced warning at %s", path)
	}
	for _, b := range res.Levels[:len(levels)-1] {
		if b.Unpriced {
			t.Errorf("%s should be priced", b.LevelName)
		}
	}
}

func hasWarning(results []validation.Result, path string) bool {
	for _, r := range results {
		if r.SpecPath == path {
			return true
		}
	}
	return false
}
