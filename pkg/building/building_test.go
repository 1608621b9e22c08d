package building

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		kind    Kind
		terrace bool
	}{
		{"foundation", KindFoundation, false},
		{"Fondations", KindFoundation, false},
		{"RDC", KindGroundFloor, false},
		{"etage", KindUpperFloor, false},
		{"upper_floor", KindUpperFloor, false},
		{"sous_sol", KindBasement, false},
		{"terrasse", KindUpperFloor, true},
	}
	for _, tt := range tests {
		kind, terrace, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.in, err)
			continue
		}
		if kind != tt.kind || terrace != tt.terrace {
			t.Errorf("ParseKind(%q) = %s/%v, want %s/%v", tt.in, kind, terrace, tt.kind, tt.terrace)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, _, err := ParseKind("attic")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDeductionSellable(t *testing.T) {
	tests := []struct {
		name        string
		ded         Deduction
		gross       string
		want        string
		wantClamped bool
	}{
		{"fixed", FixedM2(d("12"), d("8")), "84", "64", false},
		{"fixed clamps at zero", FixedM2(d("12"), d("8")), "15", "0", true},
		{"fixed exactly consumes gross", FixedM2(d("12"), d("8")), "20", "0", false},
		{"percent", Percent(d("10"), d("5")), "200", "170", false},
		{"percent over hundred", Percent(d("80"), d("40")), "200", "0", true},
		{"percent of exactly hundred", Percent(d("60"), d("40")), "200", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := tt.ded.Sellable(d(tt.gross))
			if !got.Equal(d(tt.want)) {
				t.Errorf("sellable = %s, want %s", got, tt.want)
			}
			if clamped != tt.wantClamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.wantClamped)
			}
		})
	}
}

func TestFacadeDeduction(t *testing.T) {
	p := Parameters{FacadeDeduction1: d("16"), FacadeDeduction2: d("24")}
	p.FacadeCount = 1
	if !p.FacadeDeduction().Equal(d("16")) {
		t.Errorf("one façade: got %s, want 16", p.FacadeDeduction())
	}
	p.FacadeCount = 2
	if !p.FacadeDeduction().Equal(d("24")) {
		t.Errorf("two façades: got %s, want 24", p.FacadeDeduction())
	}
}

func TestEffectivePlacement(t *testing.T) {
	tests := []struct {
		mode Mode
		set  ConnectionPlacement
		want ConnectionPlacement
	}{
		{ModeDetailed, PlacementDefault, PlacementConstruction},
		{ModeFlat, PlacementDefault, PlacementInvestment},
		{ModeFlat, PlacementConstruction, PlacementConstruction},
		{ModeDetailed, PlacementInvestment, PlacementInvestment},
	}
	for _, tt := range tests {
		p := Parameters{Mode: tt.mode, ConnectionPlacement: tt.set}
		if got := p.EffectivePlacement(); got != tt.want {
			t.Errorf("%s/%q: got %q, want %q", tt.mode, tt.set, got, tt.want)
		}
	}
}

func TestCountsAsBuilt(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{Level{Kind: KindFoundation}, false},
		{Level{Kind: KindBasement}, false},
		{Level{Kind: KindGroundFloor}, true},
		{Level{Kind: KindUpperFloor}, true},
		{Level{Kind: KindUpperFloor, IsTerrace: true}, false},
	}
	for _, tt := range tests {
		if got := tt.level.CountsAsBuilt(); got != tt.want {
			t.Errorf("%s terrace=%v: got %v, want %v", tt.level.Kind, tt.level.IsTerrace, got, tt.want)
		}
	}
}
