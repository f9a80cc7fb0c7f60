package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/toruinaba/structools/internal/batch"
)

// WritePDF writes an A4 landscape report: one page of properties per
// section, or an error line for sections that could not be built
func WritePDF(w io.Writer, title string, results []batch.Result) error {
	if title == "" {
		title = "Section Properties Report"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)

	sum := batch.Summarize(results)
	pdf.Cell(0, 6, fmt.Sprintf("Sections: %d   Failed: %d   Width-thickness NG: %d", sum.Total, sum.Failed, sum.NG))
	pdf.Ln(10)

	for _, r := range results {
		if pdf.GetY() > 150 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s  (%s)", r.Name, r.Kind)))
		pdf.Ln(8)

		if !r.OK() {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(180, 0, 0)
			pdf.MultiCell(0, 6, tr("Error: "+r.Error), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(4)
			continue
		}

		propertyTable(pdf, r)
		if wt := widthThickness(r); wt != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.Cell(0, 6, tr("Width-thickness: "+wt))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// superscripts replaces the unit exponents missing from the core fonts
var superscripts = strings.NewReplacer("²", "2", "³", "3", "⁴", "4", "⁶", "6")

// propertyTable draws a two-row table: symbols with units, then values
func propertyTable(pdf *gofpdf.Fpdf, r batch.Result) {
	const cellW, cellH = 22.0, 6.0

	var cols []column
	for _, c := range columns {
		if _, ok := c.Value(r); ok {
			cols = append(cols, c)
		}
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(221, 235, 247)
	for _, c := range cols {
		pdf.CellFormat(cellW, cellH, superscripts.Replace(fmt.Sprintf("%s [%s]", c.Header, c.Unit)), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, c := range cols {
		v, _ := c.Value(r)
		pdf.CellFormat(cellW, cellH, formatNumber(v), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
