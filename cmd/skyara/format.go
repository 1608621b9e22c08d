package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kwicl/Skyara-App/pkg/report"
	"github.com/kwicl/Skyara-App/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, e validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
	if e.SpecPath != "" && e.ActualValue != nil {
		fmt.Fprintf(w, "    -> %s = %v\n", e.SpecPath, e.ActualValue)
	}
	if e.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", e.Expected)
	}
	if e.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func writeTable(w io.Writer, doc *report.Document) {
	fmt.Fprintf(w, "%s (%s mode)\n", doc.Title, doc.Mode)
	fmt.Fprintln(w, strings.Repeat("=", len(doc.Title)+len(doc.Mode)+8))

	for _, s := range doc.Sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Title)
		fmt.Fprintln(w, strings.Repeat("-", len(s.Title)))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, strings.Join(s.Header, "\t")+"\t")
		for _, row := range s.Rows {
			fmt.Fprintln(tw, strings.Join(cellTexts(row), "\t")+"\t")
		}
		tw.Flush()
	}
}

func writeMarkdown(w io.Writer, doc *report.Document) {
	fmt.Fprintf(w, "# %s\n\n_Mode: %s_\n", doc.Title, doc.Mode)

	for _, s := range doc.Sections {
		fmt.Fprintf(w, "\n## %s\n\n", s.Title)
		fmt.Fprintf(w, "| %s |\n", strings.Join(s.Header, " | "))

		aligns := make([]string, len(s.Header))
		for i := range aligns {
			aligns[i] = "---"
			if i > 0 {
				aligns[i] = "---:"
			}
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(aligns, " | "))

		for _, row := range s.Rows {
			cells := cellTexts(row)
			if row.Emphasis {
				for i, c := range cells {
					if c != "" {
						cells[i] = "**" + c + "**"
					}
				}
			}
			fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
		}
	}
}

func cellTexts(row report.Row) []string {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		out[i] = strings.ReplaceAll(c.Text, "|", "/")
	}
	return out
}
