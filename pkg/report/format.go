package report

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amounts are rounded to whole DH, surfaces and percentages to two places.
// Rounding happens here only; the engine keeps full precision.
const (
	amountPlaces  = 0
	surfacePlaces = 2
	percentPlaces = 2
)

// FormatAmount renders a monetary amount rounded to whole DH, e.g. "1,324,650 DH".
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d DH", d.Round(amountPlaces).IntPart())
}

// FormatSurface renders a surface in m² with two decimals.
func FormatSurface(d decimal.Decimal) string {
	return printer.Sprintf("%.2f m²", d.Round(surfacePlaces).InexactFloat64())
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(d decimal.Decimal) string {
	return printer.Sprintf("%.2f %%", d.Round(percentPlaces).InexactFloat64())
}

// FormatQuantity renders a material quantity with the given precision and unit.
func FormatQuantity(d decimal.Decimal, places int32, unit string) string {
	if places == 0 {
		return printer.Sprintf("%d %s", d.Round(0).IntPart(), unit)
	}
	format := "%." + strconv.Itoa(int(places)) + "f %s"
	return printer.Sprintf(format, d.Round(places).InexactFloat64(), unit)
}
