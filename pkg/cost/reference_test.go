package cost

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kwicl/Skyara-App/pkg/building"
)

func TestDefaultReferenceTotals(t *testing.T) {
	ref := DefaultReference()
	if ref.ReferenceSurface != 100 {
		t.Errorf("reference surface = %v, want 100", ref.ReferenceSurface)
	}
	if ref.BasementMultiplier != 1.2 {
		t.Errorf("basement multiplier = %v, want 1.2", ref.BasementMultiplier)
	}

	tests := []struct {
		name  string
		entry LevelReference
		want  string
	}{
		{"foundation", ref.Foundation, "112000"},
		{"ground floor", ref.GroundFloor, "232000"},
		{"upper floor", ref.UpperFloor, "220500"},
		{"terrace", ref.Terrace, "48000"},
	}
	for _, tt := range tests {
		assertDecimal(t, tt.name, tt.entry.Total(), tt.want)
	}
}

func TestDefaultReferenceIsFresh(t *testing.T) {
	a := DefaultReference()
	a.Foundation.Labor = 1
	b := DefaultReference()
	if b.Foundation.Labor != 40000 {
		t.Errorf("foundation labor = %v, want 40000 on a fresh copy", b.Foundation.Labor)
	}
}

func TestParseReferenceErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "reference_surface: [", "parsing reference YAML"},
		{"missing surface", "basement_multiplier: 1.1\n", "reference_surface must be > 0"},
		{"negative surface", "reference_surface: -5\n", "reference_surface must be > 0"},
		{"infinite surface", "reference_surface: .inf\n", "reference_surface must be > 0"},
		{"negative multiplier", "reference_surface: 100\nbasement_multiplier: -1\n", "basement_multiplier must be > 0"},
		{"nan labor", "reference_surface: 100\nground_floor:\n  labor: .nan\n", "ground_floor: labor must be a finite number"},
		{"infinite item", "reference_surface: 100\nterrace:\n  finishing:\n    - name: tiles\n      amount: .inf\n", "terrace: tiles must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReference([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParseReferenceDefaultsMultiplier(t *testing.T) {
	ref, err := ParseReference([]byte("reference_surface: 50\n"))
	if err != nil {
		t.Fatal(err)
	}
	if ref.BasementMultiplier != DefaultBasementMultiplier {
		t.Errorf("basement multiplier = %v, want %v", ref.BasementMultiplier, DefaultBasementMultiplier)
	}
}

func TestBasementWithoutMultiplierKey(t *testing.T) {
	def := DefaultReference()
	def.BasementMultiplier = 0
	data, err := def.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	ref, err := ParseReference(data)
	if err != nil {
		t.Fatal(err)
	}

	p := flatParams()
	p.Mode = building.ModeDetailed
	basement := building.Level{ID: "b", Kind: building.KindBasement, Name: "Sous-sol"}
	ground := building.Level{ID: "g", Kind: building.KindGroundFloor, Name: "RDC"}
	res := Estimate(p, []building.Level{basement, ground}, ref)

	assertDecimal(t, "basement labor", res.Levels[0].Details.Labor, "54000")
	want := res.Levels[1].Details.Labor.Mul(d("1.2"))
	if !res.Levels[0].Details.Labor.Equal(want) {
		t.Errorf("basement labor = %s, want 1.2 x ground floor %s", res.Levels[0].Details.Labor, want)
	}
}

func TestLoadReference(t *testing.T) {
	ref, err := LoadReference("")
	if err != nil {
		t.Fatal(err)
	}
	if ref.Foundation.Labor != 40000 {
		t.Errorf("empty path should load the default table")
	}

	data, err := DefaultReference().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "reference.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadReference(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.GroundFloor.Finishing) != len(ref.GroundFloor.Finishing) {
		t.Errorf("round-tripped table lost finishing items")
	}

	if _, err := LoadReference(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReferenceFor(t *testing.T) {
	ref := DefaultReference()

	entry, err := ref.For(building.Level{Kind: building.KindBasement})
	if err != nil {
		t.Fatal(err)
	}
	if entry.Labor != ref.GroundFloor.Labor {
		t.Errorf("basement should reuse the ground-floor entry")
	}

	entry, err = ref.For(building.Level{Kind: building.KindUpperFloor, IsTerrace: true})
	if err != nil {
		t.Fatal(err)
	}
	if entry.Labor != ref.Terrace.Labor {
		t.Errorf("terrace should use the terrace entry")
	}

	_, err = ref.For(building.Level{Kind: "attic"})
	if !errors.Is(err, ErrUnknownReferenceKind) {
		t.Errorf("error = %v, want ErrUnknownReferenceKind", err)
	}
}
