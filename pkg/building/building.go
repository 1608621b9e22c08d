// Package building holds the input model of the estimation engine: the levels
// of a building and the project-wide parameters they are priced against.
package building

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownKind is returned when a level kind label cannot be resolved.
var ErrUnknownKind = errors.New("unknown level kind")

// Kind is the structural tier of a level.
type Kind string

const (
	KindFoundation  Kind = "foundation"
	KindGroundFloor Kind = "ground_floor"
	KindUpperFloor  Kind = "upper_floor"
	KindBasement    Kind = "basement"
)

// Kinds lists every level kind in reporting order.
var Kinds = []Kind{KindFoundation, KindBasement, KindGroundFloor, KindUpperFloor}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindFoundation, KindGroundFloor, KindUpperFloor, KindBasement:
		return true
	}
	return false
}

// Label returns the display label used in reports.
func (k Kind) Label() string {
	switch k {
	case KindFoundation:
		return "Foundation"
	case KindGroundFloor:
		return "Ground floor (RDC)"
	case KindUpperFloor:
		return "Upper floor"
	case KindBasement:
		return "Basement"
	default:
		return string(k)
	}
}

// ParseKind resolves a kind label, accepting the usual French aliases.
// The second return value is true when the label names a terrace, which is
// an upper floor carrying the terrace flag.
func ParseKind(s string) (Kind, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foundation", "fondation", "fondations":
		return KindFoundation, false, nil
	case "ground_floor", "rdc", "rez_de_chaussee":
		return KindGroundFloor, false, nil
	case "upper_floor", "floor", "etage":
		return KindUpperFloor, false, nil
	case "basement", "sous_sol":
		return KindBasement, false, nil
	case "terrace", "terrasse":
		return KindUpperFloor, true, nil
	}
	return "", false, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Level is one structural tier of the building.
type Level struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	IsTerrace bool   `json:"is_terrace"`

	// DeclaredSurface seeds levels the deriver does not compute (terraces).
	DeclaredSurface     decimal.Decimal `json:"declared_surface"`
	GrossWorksUnitPrice decimal.Decimal `json:"gross_works_unit_price"`
	FinishingUnitPrice  decimal.Decimal `json:"finishing_unit_price"`
}

// CountsAsBuilt reports whether the level's gross surface counts toward the
// built surface used for material estimates and the COS check.
func (l Level) CountsAsBuilt() bool {
	return !l.IsTerrace && (l.Kind == KindGroundFloor || l.Kind == KindUpperFloor)
}
