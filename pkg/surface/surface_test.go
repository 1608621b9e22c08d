package surface

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func defaultParams() building.Parameters {
	return building.Parameters{
		Mode:             building.ModeFlat,
		TerrainArea:      d("100"),
		FacadeCount:      1,
		COS:              d("3"),
		OverhangSurface:  d("6.5"),
		FacadeDeduction1: d("16"),
		FacadeDeduction2: d("24"),
		Deduction:        building.FixedM2(d("12"), d("8")),
	}
}

func TestDeriveByKind(t *testing.T) {
	p := defaultParams()
	tests := []struct {
		name     string
		level    building.Level
		gross    string
		sellable string
	}{
		{"foundation", building.Level{Kind: building.KindFoundation}, "100", "0"},
		{"ground floor", building.Level{Kind: building.KindGroundFloor}, "84", "64"},
		{"upper floor", building.Level{Kind: building.KindUpperFloor}, "90.5", "70.5"},
		{"basement", building.Level{Kind: building.KindBasement}, "100", "80"},
		{"terrace", building.Level{Kind: building.KindUpperFloor, IsTerrace: true, DeclaredSurface: d("60")}, "60", "40"},
		{"terrace without surface", building.Level{Kind: building.KindUpperFloor, IsTerrace: true}, "100", "80"},
	}
	for _, tt := range tests {
		s := DeriveLevel(p, tt.level)
		if !s.Gross.Equal(d(tt.gross)) {
			t.Errorf("%s: gross = %s, want %s", tt.name, s.Gross, tt.gross)
		}
		if !s.Sellable.Equal(d(tt.sellable)) {
			t.Errorf("%s: sellable = %s, want %s", tt.name, s.Sellable, tt.sellable)
		}
	}
}

func TestDeriveTwoFacades(t *testing.T) {
	p := defaultParams()
	p.FacadeCount = 2
	s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor})
	if !s.Gross.Equal(d("76")) {
		t.Errorf("gross = %s, want 76", s.Gross)
	}
	s = DeriveLevel(p, building.Level{Kind: building.KindUpperFloor})
	if !s.Gross.Equal(d("82.5")) {
		t.Errorf("gross = %s, want 82.5", s.Gross)
	}
}

func TestDerivePercentDeduction(t *testing.T) {
	p := defaultParams()
	p.Deduction = building.Percent(d("10"), d("15"))
	s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor})
	// 84 × 0.75
	if !s.Sellable.Equal(d("63")) {
		t.Errorf("sellable = %s, want 63", s.Sellable)
	}
}

func TestDeriveOverDeductionClamped(t *testing.T) {
	p := defaultParams()
	p.Deduction = building.FixedM2(d("60"), d("40"))
	s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor})
	if s.Sellable.IsNegative() || !s.Sellable.IsZero() {
		t.Errorf("sellable = %s, want 0", s.Sellable)
	}
	if !s.Clamped {
		t.Error("expected clamped flag on over-deducted level")
	}
}

func TestDeriveExactDeductionNotClamped(t *testing.T) {
	p := defaultParams()
	// ground floor gross is 100 - 16 = 84
	p.Deduction = building.FixedM2(d("60"), d("24"))
	s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor})
	if !s.Sellable.IsZero() {
		t.Errorf("sellable = %s, want 0", s.Sellable)
	}
	if s.Clamped {
		t.Error("deductions equal to gross leave nothing to clamp")
	}

	p.Deduction = building.Percent(d("70"), d("30"))
	if s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor}); s.Clamped {
		t.Error("100% deductions leave nothing to clamp")
	}
}

func TestDeriveGrossNotClamped(t *testing.T) {
	p := defaultParams()
	p.TerrainArea = d("10")
	s := DeriveLevel(p, building.Level{Kind: building.KindGroundFloor})
	if !s.Gross.Equal(d("-6")) {
		t.Errorf("gross = %s, want -6", s.Gross)
	}
	if !s.Sellable.IsZero() {
		t.Errorf("sellable = %s, want 0", s.Sellable)
	}
}

func TestFoundationNeverSellable(t *testing.T) {
	p := defaultParams()
	p.Deduction = building.Percent(decimal.Zero, decimal.Zero)
	for _, area := range []string{"1", "100", "999.5"} {
		p.TerrainArea = d(area)
		s := DeriveLevel(p, building.Level{Kind: building.KindFoundation})
		if !s.Sellable.IsZero() {
			t.Errorf("area %s: foundation sellable = %s, want 0", area, s.Sellable)
		}
	}
}

func TestDeriveKeepsOrderAndIDs(t *testing.T) {
	p := defaultParams()
	levels := []building.Level{
		{ID: "c", Kind: building.KindUpperFloor},
		{ID: "a", Kind: building.KindFoundation},
		{ID: "b", Kind: building.KindGroundFloor},
	}
	out := Derive(p, levels)
	if len(out) != 3 {
		t.Fatalf("got %d surfaces, want 3", len(out))
	}
	for i, want := range []string{"c", "a", "b"} {
		if out[i].LevelID != want {
			t.Errorf("out[%d].LevelID = %q, want %q", i, out[i].LevelID, want)
		}
	}
}
