// Package surface derives the gross and sellable surface of each level from
// the terrain and the regulatory deductions.
package surface

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
)

// Surface is the derived surface pair of one level, in m².
type Surface struct {
	LevelID  string          `json:"level_id"`
	Gross    decimal.Decimal `json:"gross"`
	Sellable decimal.Decimal `json:"sellable"`
	// Clamped is set when deductions would have made the sellable surface negative.
	Clamped bool `json:"clamped,omitempty"`
}

// Derive computes the surfaces of every level, in input order.
// Each level depends only on its own kind and the project parameters.
func Derive(p building.Parameters, levels []building.Level) []Surface {
	out := make([]Surface, len(levels))
	for i, l := range levels {
		out[i] = DeriveLevel(p, l)
	}
	return out
}

// DeriveLevel computes the surface pair of a single level.
func DeriveLevel(p building.Parameters, l building.Level) Surface {
	s := Surface{LevelID: l.ID, Gross: Gross(p, l)}
	if l.Kind == building.KindFoundation {
		s.Sellable = decimal.Zero
		return s
	}
	s.Sellable, s.Clamped = p.Deduction.Sellable(s.Gross)
	return s
}

// Gross returns the built surface of a level. It is not clamped: a negative
// value means the deductions exceed the terrain, which is a caller error.
func Gross(p building.Parameters, l building.Level) decimal.Decimal {
	facade := p.FacadeDeduction()
	switch {
	case l.Kind == building.KindFoundation, l.Kind == building.KindBasement:
		return p.TerrainArea
	case l.IsTerrace:
		if l.DeclaredSurface.IsPositive() {
			return l.DeclaredSurface
		}
		return p.TerrainArea
	case l.Kind == building.KindGroundFloor:
		return p.TerrainArea.Sub(facade)
	case l.Kind == building.KindUpperFloor:
		return p.TerrainArea.Sub(facade).Add(p.OverhangSurface)
	default:
		return l.DeclaredSurface
	}
}
