// Package report lays out an estimate as a paginated document with a fixed
// section order and renders it to PDF or XLSX.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/cost"
)

// Section titles, in document order.
const (
	SectionSummary   = "Summary"
	SectionFinancial = "Financial recap"
	SectionMaterials = "Material estimate"
	SectionLevels    = "Level breakdown"
)

// Document is the renderer-independent report.
type Document struct {
	Title    string
	Mode     building.Mode
	Sections []Section
}

// Section is one titled table.
type Section struct {
	Title  string
	Header []string
	Rows   []Row
}

// Row is one table line. Emphasis marks totals and group headings.
type Row struct {
	Cells    []Cell
	Emphasis bool
}

// Cell carries the display text and, for numeric cells, the rounded value
// spreadsheets store.
type Cell struct {
	Text    string
	Value   float64
	Numeric bool
}

func text(s string) Cell { return Cell{Text: s} }

func amount(d decimal.Decimal) Cell {
	return Cell{Text: FormatAmount(d), Value: d.Round(amountPlaces).InexactFloat64(), Numeric: true}
}

func surfaceCell(d decimal.Decimal) Cell {
	return Cell{Text: FormatSurface(d), Value: d.Round(surfacePlaces).InexactFloat64(), Numeric: true}
}

func percent(d decimal.Decimal) Cell {
	return Cell{Text: FormatPercent(d), Value: d.Round(percentPlaces).InexactFloat64(), Numeric: true}
}

func quantity(d decimal.Decimal, places int32, unit string) Cell {
	return Cell{Text: FormatQuantity(d, places, unit), Value: d.Round(places).InexactFloat64(), Numeric: true}
}

// Build lays out an estimate: summary table, financial recap, material
// estimate, then the per-level breakdown grouped by kind.
func Build(projectName string, res *cost.Result) *Document {
	return &Document{
		Title: projectName,
		Mode:  res.Mode,
		Sections: []Section{
			summarySection(res),
			financialSection(res.Totals),
			materialsSection(res.Totals),
			levelsSection(res),
		},
	}
}

func summarySection(res *cost.Result) Section {
	s := Section{
		Title:  SectionSummary,
		Header: []string{"Level", "Kind", "Gross surface", "Sellable surface", "Gross works", "Finishing", "Total"},
	}
	for _, b := range res.Levels {
		s.Rows = append(s.Rows, Row{Cells: []Cell{
			text(b.LevelName),
			text(kindLabel(b)),
			surfaceCell(b.GrossSurface),
			surfaceCell(b.SellableSurface),
			amount(b.GrossWorksCost),
			amount(b.FinishingCost),
			amount(b.Total),
		}})
	}
	t := res.Totals
	s.Rows = append(s.Rows, Row{Emphasis: true, Cells: []Cell{
		text("Total"),
		text(""),
		surfaceCell(t.TotalSurface),
		surfaceCell(t.TotalSellableSurface),
		amount(t.GrossWorksTotal),
		amount(t.FinishingTotal),
		amount(t.ConstructionCost),
	}})
	return s
}

func financialSection(t cost.Totals) Section {
	line := func(label string, c Cell) Row { return Row{Cells: []Cell{text(label), c}} }
	s := Section{
		Title:  SectionFinancial,
		Header: []string{"Item", "Amount"},
		Rows: []Row{
			line("Gross works", amount(t.GrossWorksTotal)),
			line("Finishing", amount(t.FinishingTotal)),
			{Emphasis: true, Cells: []Cell{text("Construction cost"), amount(t.ConstructionCost)}},
			line("Land", amount(t.LandCost)),
			line("Notary fees", amount(t.NotaryFees)),
			line("Miscellaneous fees (%)", amount(t.MiscFeesPercentValue)),
			line("Miscellaneous fees (fixed)", amount(t.MiscFeesFixed)),
			line("Connection fees ("+string(t.ConnectionPlacement)+")", amount(t.ConnectionFees)),
			{Emphasis: true, Cells: []Cell{text("Total investment"), amount(t.TotalInvestment)}},
			line("Sellable surface", surfaceCell(t.TotalSellableSurface)),
			line("Revenue", amount(t.TotalRevenue)),
			line("Gross profit", amount(t.GrossProfit)),
			line("State tax", amount(t.StateTax)),
			{Emphasis: true, Cells: []Cell{text("Net profit"), amount(t.NetProfit)}},
			line("Margin", percent(t.MarginPercentage)),
			line("Cost per built m²", amount(t.CostPerBuiltM2)),
			line("Break-even price per m²", amount(t.BreakEvenPricePerM2)),
			line("Return on investment", percent(t.ReturnOnInvestment)),
		},
	}
	return s
}

func materialsSection(t cost.Totals) Section {
	cos := "within limit"
	if t.IsOverCOS {
		cos = "EXCEEDED"
	}
	return Section{
		Title:  SectionMaterials,
		Header: []string{"Item", "Quantity"},
		Rows: []Row{
			{Cells: []Cell{text("Steel"), quantity(t.Materials.SteelKg, 0, "kg")}},
			{Cells: []Cell{text("Cement"), quantity(t.Materials.CementBags, 0, "bags")}},
			{Cells: []Cell{text("Bricks"), quantity(t.Materials.Bricks, 0, "units")}},
			{Cells: []Cell{text("Concrete"), quantity(t.Materials.ConcreteM3, 2, "m³")}},
			{Cells: []Cell{text("Built surface"), surfaceCell(t.TotalSurface)}},
			{Cells: []Cell{text("COS limit"), surfaceCell(t.MaxAllowedSurface)}},
			{Emphasis: t.IsOverCOS, Cells: []Cell{text("COS check"), text(cos)}},
		},
	}
}

// groups is the kind order of the level breakdown.
var groups = []struct {
	title string
	match func(cost.Breakdown) bool
}{
	{"Foundation", func(b cost.Breakdown) bool { return b.Kind == building.KindFoundation }},
	{"Basement", func(b cost.Breakdown) bool { return b.Kind == building.KindBasement }},
	{"Ground floor", func(b cost.Breakdown) bool { return b.Kind == building.KindGroundFloor }},
	{"Upper floors", func(b cost.Breakdown) bool { return b.Kind == building.KindUpperFloor && !b.IsTerrace }},
	{"Terrace", func(b cost.Breakdown) bool { return b.IsTerrace }},
}

func levelsSection(res *cost.Result) Section {
	s := Section{
		Title:  SectionLevels,
		Header: []string{"Level", "Category", "Amount"},
	}
	for _, g := range groups {
		var members []cost.Breakdown
		for _, b := range res.Levels {
			if g.match(b) {
				members = append(members, b)
			}
		}
		if len(members) == 0 {
			continue
		}
		s.Rows = append(s.Rows, Row{Emphasis: true, Cells: []Cell{text(g.title), text(""), text("")}})
		for _, b := range members {
			for _, c := range b.Categories {
				s.Rows = append(s.Rows, Row{Cells: []Cell{text(b.LevelName), text(c.Name), amount(c.Amount)}})
			}
			s.Rows = append(s.Rows, Row{Emphasis: true, Cells: []Cell{text(b.LevelName), text("total"), amount(b.Total)}})
		}
	}
	return s
}

func kindLabel(b cost.Breakdown) string {
	if b.IsTerrace {
		return "Terrace"
	}
	return b.Kind.Label()
}
