package project

import "github.com/kwicl/Skyara-App/pkg/parcel"

// File is a project as written on disk or posted to the API. Amounts are
// plain numbers here; Build converts them into the engine's decimal model.
type File struct {
	Name       string      `yaml:"name" toml:"name" json:"name"`
	Mode       string      `yaml:"mode" toml:"mode" json:"mode"`
	Reference  string      `yaml:"reference,omitempty" toml:"reference,omitempty" json:"reference,omitempty"`
	Terrain    Terrain     `yaml:"terrain" toml:"terrain" json:"terrain"`
	Deductions Deductions  `yaml:"deductions" toml:"deductions" json:"deductions"`
	Prices     Prices      `yaml:"prices" toml:"prices" json:"prices"`
	Fees       Fees        `yaml:"fees" toml:"fees" json:"fees"`
	Levels     []LevelSpec `yaml:"levels,omitempty" toml:"levels,omitempty" json:"levels,omitempty"`
	Building   *Generator  `yaml:"building,omitempty" toml:"building,omitempty" json:"building,omitempty"`

	dir string
}

// Terrain describes the plot.
type Terrain struct {
	Area    float64        `yaml:"area" toml:"area" json:"area"`
	Polygon []parcel.Point `yaml:"polygon,omitempty" toml:"polygon,omitempty" json:"polygon,omitempty"`
	Facades int            `yaml:"facades" toml:"facades" json:"facades"`
	COS     float64        `yaml:"cos" toml:"cos" json:"cos"`
}

// Parcel returns the surveyed outline, empty when none was given.
func (t Terrain) Parcel() parcel.Polygon {
	return parcel.New(t.Polygon...)
}

// Deductions are the surfaces removed from the terrain area.
type Deductions struct {
	Mode     string  `yaml:"mode" toml:"mode" json:"mode"`
	Facade1  float64 `yaml:"facade_1" toml:"facade_1" json:"facade_1"`
	Facade2  float64 `yaml:"facade_2" toml:"facade_2" json:"facade_2"`
	Overhang float64 `yaml:"overhang" toml:"overhang" json:"overhang"`
	Stairs   float64 `yaml:"stairs" toml:"stairs" json:"stairs"`
	Walls    float64 `yaml:"walls" toml:"walls" json:"walls"`
}

type Prices struct {
	LandPerM2          float64 `yaml:"land_per_m2" toml:"land_per_m2" json:"land_per_m2"`
	SalePerM2          float64 `yaml:"sale_per_m2" toml:"sale_per_m2" json:"sale_per_m2"`
	FoundationFlatRate float64 `yaml:"foundation_flat_rate" toml:"foundation_flat_rate" json:"foundation_flat_rate"`
}

type Fees struct {
	Notary              float64 `yaml:"notary" toml:"notary" json:"notary"`
	MiscPercent         float64 `yaml:"misc_percent" toml:"misc_percent" json:"misc_percent"`
	MiscFixed           float64 `yaml:"misc_fixed" toml:"misc_fixed" json:"misc_fixed"`
	Connection          float64 `yaml:"connection" toml:"connection" json:"connection"`
	ConnectionPlacement string  `yaml:"connection_placement" toml:"connection_placement" json:"connection_placement"`
	StateTaxPercent     float64 `yaml:"state_tax_percent" toml:"state_tax_percent" json:"state_tax_percent"`
}

// LevelSpec is one explicitly listed level.
type LevelSpec struct {
	ID              string  `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty"`
	Kind            string  `yaml:"kind" toml:"kind" json:"kind"`
	Name            string  `yaml:"name" toml:"name" json:"name"`
	Terrace         bool    `yaml:"terrace,omitempty" toml:"terrace,omitempty" json:"terrace,omitempty"`
	Surface         float64 `yaml:"surface,omitempty" toml:"surface,omitempty" json:"surface,omitempty"`
	GrossWorksPrice float64 `yaml:"gross_works_price" toml:"gross_works_price" json:"gross_works_price"`
	FinishingPrice  float64 `yaml:"finishing_price" toml:"finishing_price" json:"finishing_price"`
}

// Generator describes a standard building instead of listing its levels.
type Generator struct {
	UpperFloors     int     `yaml:"upper_floors" toml:"upper_floors" json:"upper_floors"`
	Terrace         bool    `yaml:"terrace" toml:"terrace" json:"terrace"`
	Basement        bool    `yaml:"basement" toml:"basement" json:"basement"`
	GrossWorksPrice float64 `yaml:"gross_works_price" toml:"gross_works_price" json:"gross_works_price"`
	FinishingPrice  float64 `yaml:"finishing_price" toml:"finishing_price" json:"finishing_price"`
	TerracePrice    float64 `yaml:"terrace_price" toml:"terrace_price" json:"terrace_price"`
	TerraceSurface  float64 `yaml:"terrace_surface,omitempty" toml:"terrace_surface,omitempty" json:"terrace_surface,omitempty"`
}
