package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is Excel's sheet name length limit.
const maxSheetName = 31

// WriteXLSX renders the document as a workbook with one sheet per section.
func WriteXLSX(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	emphasisStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating emphasis style: %w", err)
	}

	for i, s := range doc.Sections {
		name := sheetName(s.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}

		for col, h := range s.Header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(name, cell, h); err != nil {
				return fmt.Errorf("writing %s!%s: %w", name, cell, err)
			}
		}
		if err := f.SetRowStyle(name, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("styling %s header: %w", name, err)
		}

		for r, row := range s.Rows {
			rowNum := r + 2
			for col, c := range row.Cells {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
				var v any = c.Text
				if c.Numeric {
					v = c.Value
				}
				if err := f.SetCellValue(name, cell, v); err != nil {
					return fmt.Errorf("writing %s!%s: %w", name, cell, err)
				}
			}
			if row.Emphasis {
				if err := f.SetRowStyle(name, rowNum, rowNum, emphasisStyle); err != nil {
					return fmt.Errorf("styling %s row %d: %w", name, rowNum, err)
				}
			}
		}

		f.SetColWidth(name, "A", "A", 30)
		f.SetColWidth(name, "B", "H", 18)
	}

	f.SetDocProps(&excelize.DocProperties{Title: doc.Title, Creator: "skyara"})
	return f.Write(w)
}

func sheetName(title string) string {
	if len(title) > maxSheetName {
		return title[:maxSheetName]
	}
	return title
}
