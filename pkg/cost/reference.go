package cost

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kwicl/Skyara-App/pkg/building"
)

//go:embed reference.yaml
var defaultReferenceYAML []byte

// ErrUnknownReferenceKind is returned when a reference table is asked for a
// kind it has no entry for.
var ErrUnknownReferenceKind = errors.New("no reference entry for level kind")

// DefaultBasementMultiplier applies when a table leaves basement_multiplier out.
const DefaultBasementMultiplier = 1.2

// LineItem is one named amount of the reference table, in DH.
type LineItem struct {
	Name   string  `yaml:"name" json:"name"`
	Amount float64 `yaml:"amount" json:"amount"`
}

// LevelReference holds the reference costs of one level kind.
type LevelReference struct {
	Labor     float64    `yaml:"labor" json:"labor"`
	Materials []LineItem `yaml:"materials" json:"materials"`
	Equipment []LineItem `yaml:"equipment,omitempty" json:"equipment,omitempty"`
	Finishing []LineItem `yaml:"finishing,omitempty" json:"finishing,omitempty"`
}

// Reference is the detailed cost table, defined for ReferenceSurface m² and
// scaled linearly by terrain area. It is read-only once loaded.
type Reference struct {
	ReferenceSurface   float64        `yaml:"reference_surface" json:"reference_surface"`
	BasementMultiplier float64        `yaml:"basement_multiplier" json:"basement_multiplier"`
	Foundation         LevelReference `yaml:"foundation" json:"foundation"`
	GroundFloor        LevelReference `yaml:"ground_floor" json:"ground_floor"`
	UpperFloor         LevelReference `yaml:"upper_floor" json:"upper_floor"`
	Terrace            LevelReference `yaml:"terrace" json:"terrace"`
}

// DefaultReference returns a fresh copy of the built-in reference table.
func DefaultReference() *Reference {
	ref, err := ParseReference(defaultReferenceYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded reference table: %v", err))
	}
	return ref
}

// ParseReference decodes a reference table from YAML.
func ParseReference(data []byte) (*Reference, error) {
	var ref Reference
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing reference YAML: %w", err)
	}
	if ref.ReferenceSurface <= 0 || !finite(ref.ReferenceSurface) {
		return nil, fmt.Errorf("reference_surface must be > 0, got %v", ref.ReferenceSurface)
	}
	if ref.BasementMultiplier == 0 {
		ref.BasementMultiplier = DefaultBasementMultiplier
	}
	if ref.BasementMultiplier < 0 || !finite(ref.BasementMultiplier) {
		return nil, fmt.Errorf("basement_multiplier must be > 0, got %v", ref.BasementMultiplier)
	}
	entries := []struct {
		name  string
		entry LevelReference
	}{
		{"foundation", ref.Foundation},
		{"ground_floor", ref.GroundFloor},
		{"upper_floor", ref.UpperFloor},
		{"terrace", ref.Terrace},
	}
	for _, e := range entries {
		if err := e.entry.check(); err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}
	}
	return &ref, nil
}

// check rejects amounts that cannot be priced.
func (lr LevelReference) check() error {
	if !finite(lr.Labor) {
		return fmt.Errorf("labor must be a finite number, got %v", lr.Labor)
	}
	for _, items := range [][]LineItem{lr.Materials, lr.Equipment, lr.Finishing} {
		for _, it := range items {
			if !finite(it.Amount) {
				return fmt.Errorf("%s must be a finite number, got %v", it.Name, it.Amount)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadReference reads a reference table file. An empty path yields the default table.
func LoadReference(path string) (*Reference, error) {
	if path == "" {
		return DefaultReference(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	return ParseReference(data)
}

// Marshal encodes the table back to YAML.
func (r *Reference) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// For returns the reference entry used for a level. Basements reuse the
// ground-floor entry; the multiplier is applied by the estimator.
func (r *Reference) For(l building.Level) (LevelReference, error) {
	if l.IsTerrace {
		return r.Terrace, nil
	}
	switch l.Kind {
	case building.KindFoundation:
		return r.Foundation, nil
	case building.KindGroundFloor, building.KindBasement:
		return r.GroundFloor, nil
	case building.KindUpperFloor:
		return r.UpperFloor, nil
	}
	return LevelReference{}, fmt.Errorf("%w: %q", ErrUnknownReferenceKind, l.Kind)
}

func (r *Reference) ratio(terrainArea decimal.Decimal) decimal.Decimal {
	return terrainArea.Div(decimal.NewFromFloat(r.ReferenceSurface))
}

// Total is labor plus every line item of the entry, unscaled.
func (lr LevelReference) Total() decimal.Decimal {
	return decimal.NewFromFloat(lr.Labor).
		Add(sumItems(lr.Materials)).
		Add(sumItems(lr.Equipment)).
		Add(sumItems(lr.Finishing))
}

func sumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Amount))
	}
	return total
}
