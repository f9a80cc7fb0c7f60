package report

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/toruinaba/structools/internal/batch"
)

const (
	propertiesSheet = "Properties"
	summarySheet    = "Summary"
)

// WriteXLSX writes a workbook with a properties sheet (one row per
// section, numbers as numeric cells) and a summary sheet
func WriteXLSX(w io.Writer, title string, results []batch.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), propertiesSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	numeric, err := f.NewStyle(&excelize.Style{NumFmt: 11}) // 0.00E+00
	if err != nil {
		return err
	}

	header := headers()
	if err := f.SetSheetRow(propertiesSheet, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(propertiesSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, r := range results {
		row := []any{r.Name, r.Kind}
		for _, c := range columns {
			if v, ok := c.Value(r); ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, widthThickness(r), r.Error)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(propertiesSheet, cell, &row); err != nil {
			return err
		}
	}

	if len(results) > 0 {
		first, _ := excelize.CoordinatesToCellName(3, 2)
		lastNum, _ := excelize.CoordinatesToCellName(2+len(columns), len(results)+1)
		if err := f.SetCellStyle(propertiesSheet, first, lastNum, numeric); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(propertiesSheet, "A", "B", 18); err != nil {
		return err
	}
	if err := f.SetPanes(propertiesSheet, &excelize.Panes{
		Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight",
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	sum := batch.Summarize(results)
	rows := [][]any{
		{"Title", title},
		{"Generated", time.Now().Format("2006-01-02 15:04")},
		{"Sections", sum.Total},
		{"Failed", sum.Failed},
		{"Width-thickness NG", sum.NG},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
