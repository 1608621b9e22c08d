// Package pipeline chains the engine stages the CLI and the server share:
// schema validation, model building, estimation and feasibility checks.
package pipeline

import (
	"fmt"

	"github.com/kwicl/Skyara-App/pkg/building"
	"github.com/kwicl/Skyara-App/pkg/cost"
	"github.com/kwicl/Skyara-App/pkg/project"
	"github.com/kwicl/Skyara-App/pkg/validation"
)

// Outcome is everything one run produces.
type Outcome struct {
	Params building.Parameters `json:"parameters"`
	Levels []building.Level    `json:"levels"`
	Result *cost.Result        `json:"result"`
	Report *validation.Report  `json:"validation"`
}

// Validate runs schema validation and, when the project is valid, the
// feasibility advisories of a full estimate.
func Validate(f *project.File, ref *cost.Reference) *validation.Report {
	out, err := Run(f, ref)
	if err != nil {
		if out != nil {
			return out.Report
		}
		r := validation.ValidateSchema(f)
		r.AddError(validation.Result{Level: validation.LevelSchema, Message: err.Error()})
		return r
	}
	return out.Report
}

// Run validates the project and estimates it. An invalid project yields a
// *validation.ConfigurationError and an Outcome holding only the report.
// ref may be nil; the project's own reference file, then the built-in
// table, are used instead.
func Run(f *project.File, ref *cost.Reference) (*Outcome, error) {
	report := validation.ValidateSchema(f)
	if err := report.Err(); err != nil {
		return &Outcome{Report: report}, err
	}

	params, levels, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("building project: %w", err)
	}

	if ref == nil && params.Mode == building.ModeDetailed {
		ref, err = cost.LoadReference(f.ReferencePath())
		if err != nil {
			return nil, fmt.Errorf("loading reference table: %w", err)
		}
	}

	res := cost.Estimate(params, levels, ref)
	report.Merge(cost.Check(res))

	return &Outcome{
		Params: params,
		Levels: levels,
		Result: res,
		Report: report,
	}, nil
}
