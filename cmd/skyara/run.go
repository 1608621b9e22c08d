package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kwicl/Skyara-App/internal/pipeline"
	"github.com/kwicl/Skyara-App/pkg/cost"
	"github.com/kwicl/Skyara-App/pkg/project"
	"github.com/kwicl/Skyara-App/pkg/report"
	"github.com/kwicl/Skyara-App/pkg/validation"
)

var errInvalidProject = errors.New("project has validation errors")

// loadReferenceOverride loads an explicit reference table. An empty path
// returns nil so the project's own table, then the built-in one, apply.
func loadReferenceOverride(path string) (*cost.Reference, error) {
	if path == "" {
		return nil, nil
	}
	ref, err := cost.LoadReference(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Msg("using reference table override")
	return ref, nil
}

// loadAndRun loads the project and runs the pipeline. Validation failures
// are printed before the error is returned.
func loadAndRun(w io.Writer, projectPath, referencePath string) (*project.File, *pipeline.Outcome, error) {
	f, err := project.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	ref, err := loadReferenceOverride(referencePath)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("project", f.Name).Str("mode", f.Mode).Msg("project loaded")

	out, err := pipeline.Run(f, ref)
	if err != nil {
		var cfgErr *validation.ConfigurationError
		if errors.As(err, &cfgErr) {
			printValidationReport(w, cfgErr.Report)
			return nil, nil, errInvalidProject
		}
		return nil, nil, err
	}
	return f, out, nil
}

func runValidate(w io.Writer, projectPath, referencePath string) error {
	f, err := project.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	ref, err := loadReferenceOverride(referencePath)
	if err != nil {
		return err
	}

	r := pipeline.Validate(f, ref)
	printValidationReport(w, r)
	if !r.Valid {
		return errInvalidProject
	}
	return nil
}

func runEstimate(w io.Writer, projectPath, referencePath, format string) error {
	f, out, err := loadAndRun(w, projectPath, referencePath)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "markdown", "md":
		writeMarkdown(w, report.Build(f.Name, out.Result))
	case "table", "":
		writeTable(w, report.Build(f.Name, out.Result))
	default:
		return fmt.Errorf("unknown format %q (want table, json or markdown)", format)
	}

	if len(out.Report.Warnings) > 0 || len(out.Report.Info) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, out.Report)
	}
	return nil
}

func runReport(w io.Writer, projectPath, referencePath, pdfPath, xlsxPath string) error {
	if pdfPath == "" && xlsxPath == "" {
		return errors.New("nothing to write: give --pdf and/or --xlsx")
	}
	f, out, err := loadAndRun(w, projectPath, referencePath)
	if err != nil {
		return err
	}
	doc := report.Build(f.Name, out.Result)

	if pdfPath != "" {
		if err := writeFile(pdfPath, doc, report.WritePDF); err != nil {
			return err
		}
		fmt.Fprintf(w, "PDF report written to %s\n", pdfPath)
	}
	if xlsxPath != "" {
		if err := writeFile(xlsxPath, doc, report.WriteXLSX); err != nil {
			return err
		}
		fmt.Fprintf(w, "XLSX report written to %s\n", xlsxPath)
	}
	return nil
}

func writeFile(path string, doc *report.Document, render func(io.Writer, *report.Document) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(out, doc); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}

func runReference(w io.Writer, referencePath string) error {
	ref, err := cost.LoadReference(referencePath)
	if err != nil {
		return err
	}
	data, err := ref.Marshal()
	if err != nil {
		return fmt.Errorf("encoding reference table: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n# totals per %.0f m²\n", ref.ReferenceSurface)
	entries := []struct {
		name  string
		entry cost.LevelReference
	}{
		{"foundation", ref.Foundation},
		{"ground_floor", ref.GroundFloor},
		{"upper_floor", ref.UpperFloor},
		{"terrace", ref.Terrace},
	}
	for _, e := range entries {
		fmt.Fprintf(w, "#   %-13s %s\n", e.name, report.FormatAmount(e.entry.Total()))
	}
	return nil
}
