package cost

import (
	"fmt"

	"github.com/kwicl/Skyara-App/pkg/validation"
)

// Check runs the advisory feasibility checks on a computed result. None of
// them invalidates the estimate; they are warnings and info only.
func Check(res *Result) *validation.Report {
	report := validation.NewReport()
	checkCOS(res, report)
	checkProfit(res, report)
	checkSellable(res, report)
	checkClamped(res, report)
	checkUnpriced(res, report)
	return report
}

func checkCOS(res *Result, report *validation.Report) {
	t := res.Totals
	if !t.IsOverCOS {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("built surface %s m² exceeds the COS limit of %s m²", t.TotalSurface.StringFixed(2), t.MaxAllowedSurface.StringFixed(2)),
		SpecPath:    "terrain.cos",
		ActualValue: t.TotalSurface.StringFixed(2),
		Expected:    fmt.Sprintf("<= %s m²", t.MaxAllowedSurface.StringFixed(2)),
		Suggestions: []string{
			"Remove an upper floor or reduce the overhang",
			"Check the COS applicable to the parcel",
		},
	})
}

func checkProfit(res *Result, report *validation.Report) {
	t := res.Totals
	if !t.NetProfit.IsNegative() {
		return
	}
	report.AddWarning(validation.Result{
		Level:       validation.LevelAnalytical,
		Message:     fmt.Sprintf("project runs at a loss of %s DH", t.NetProfit.Neg().StringFixed(0)),
		SpecPath:    "prices.sale_per_m2",
		ActualValue: t.NetProfit.StringFixed(2),
		Expected:    "> 0",
		Suggestions: []string{
			fmt.Sprintf("Break-even sale price is %s DH/m²", t.BreakEvenPricePerM2.StringFixed(0)),
		},
	})
}

func checkSellable(res *Result, report *validation.Report) {
	if res.Totals.TotalSellableSurface.IsPositive() {
		return
	}
	report.AddWarning(validation.Result{
		Level:    validation.LevelAnalytical,
		Message:  "project has no sellable surface; revenue and margin are zero",
		SpecPath: "levels",
	})
}

func checkClamped(res *Result, report *validation.Report) {
	for i, b := range res.Levels {
		if !b.Clamped {
			continue
		}
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("%s: stairs and walls deductions exceed the gross surface; sellable surface set to 0", b.LevelName),
			SpecPath:    fmt.Sprintf("levels[%d]", i),
			ActualValue: b.GrossSurface.StringFixed(2),
		})
	}
}

func checkUnpriced(res *Result, report *validation.Report) {
	for i, b := range res.Levels {
		if !b.Unpriced {
			continue
		}
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("%s: no reference costs for kind %q; level priced at 0", b.LevelName, b.Kind),
			SpecPath:    fmt.Sprintf("levels[%d].kind", i),
			ActualValue: string(b.Kind),
			Expected:    "foundation | ground_floor | upper_floor | basement | terrace",
		})
	}
}
