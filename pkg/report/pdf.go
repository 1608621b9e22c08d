package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const pageWidth = 190.0

// WritePDF renders the document as an A4 portrait PDF.
func WritePDF(w io.Writer, doc *Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(doc.Title), false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 12, tr(doc.Title), "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	pdf.Ln(2)
	pdf.CellFormat(pageWidth, 6, tr(fmt.Sprintf("Estimation mode: %s", doc.Mode)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, s := range doc.Sections {
		writeSection(pdf, tr, s)
	}
	return pdf.Output(w)
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, s Section) {
	pdf.SetFillColor(50, 50, 50)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 9, tr(s.Title), "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	widths := columnWidths(len(s.Header))

	pdf.SetFillColor(200, 220, 240)
	pdf.SetFont("Arial", "B", 8)
	for i, h := range s.Header {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(240, 240, 240)
	for _, row := range s.Rows {
		style := ""
		if row.Emphasis {
			style = "B"
		}
		pdf.SetFont("Arial", style, 8)
		for i, c := range row.Cells {
			align := "L"
			if c.Numeric {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c.Text), "1", 0, align, row.Emphasis, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// columnWidths gives the first column a double share of the page width.
func columnWidths(n int) []float64 {
	if n == 0 {
		return nil
	}
	share := pageWidth / float64(n+1)
	widths := make([]float64, n)
	for i := range widths {
		widths[i] = share
	}
	widths[0] = 2 * share
	return widths
}
