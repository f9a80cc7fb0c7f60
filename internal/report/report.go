package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/section"
)

// ErrUnsupportedFormat is returned for report files other than .xlsx and .pdf
var ErrUnsupportedFormat = errors.New("unsupported report format")

// column is one field of the properties table
type column struct {
	Header string
	Unit   string
	Value  func(batch.Result) (float64, bool)
}

func prop(f func(p *section.Properties) float64) func(batch.Result) (float64, bool) {
	return func(r batch.Result) (float64, bool) {
		if r.Properties == nil {
			return 0, false
		}
		return f(r.Properties), true
	}
}

func steel(f func(p *section.SteelProperties) float64) func(batch.Result) (float64, bool) {
	return func(r batch.Result) (float64, bool) {
		if r.Properties == nil || r.Properties.Steel == nil {
			return 0, false
		}
		return f(r.Properties.Steel), true
	}
}

// columns lists the numeric columns, after Name and Kind
var columns = []column{
	{"A", "mm²", prop(func(p *section.Properties) float64 { return p.Area })},
	{"Cx", "mm", prop(func(p *section.Properties) float64 { return p.Centroid.X })},
	{"Cy", "mm", prop(func(p *section.Properties) float64 { return p.Centroid.Y })},
	{"Ix", "mm⁴", prop(func(p *section.Properties) float64 { return p.MomentOfInertiaStrong })},
	{"Iy", "mm⁴", prop(func(p *section.Properties) float64 { return p.MomentOfInertiaWeak })},
	{"Zx", "mm³", prop(func(p *section.Properties) float64 { return p.SectionModulusStrong })},
	{"Zy", "mm³", prop(func(p *section.Properties) float64 { return p.SectionModulusWeak })},
	{"J", "mm⁴", prop(func(p *section.Properties) float64 { return p.TorsionConstant })},
	{"Cw", "mm⁶", prop(func(p *section.Properties) float64 { return p.WarpingConstant })},
	{"Mpx", "mm³", steel(func(s *section.SteelProperties) float64 { return s.PlasticMomentX })},
	{"Mpy", "mm³", steel(func(s *section.SteelProperties) float64 { return s.PlasticMomentY })},
	{"Sx", "mm", steel(func(s *section.SteelProperties) float64 { return s.ShearCenter.X })},
}

// headers returns the table header row
func headers() []string {
	h := []string{"Name", "Kind"}
	for _, c := range columns {
		h = append(h, fmt.Sprintf("%s (%s)", c.Header, c.Unit))
	}
	return append(h, "Width-thickness", "Error")
}

// widthThickness summarizes a check as "OK 46.75/72, 7.69/12"
func widthThickness(r batch.Result) string {
	wt := r.WidthThickness
	if wt == nil {
		return ""
	}
	status := section.StatusOK
	if !wt.OK() {
		status = section.StatusNG
	}
	return fmt.Sprintf("%s %s web %s/%s, flange %s/%s", wt.Grade, status,
		formatNumber(wt.Web.Ratio), formatNumber(wt.Web.Limit),
		formatNumber(wt.Flange.Ratio), formatNumber(wt.Flange.Limit))
}

// formatNumber prints large values in engineering notation and the
// rest with up to two decimals
func formatNumber(v float64) string {
	if v != 0 && (v >= 1e7 || v <= -1e7) {
		return strconv.FormatFloat(v, 'e', 4, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s
}

// WriteFile writes the results as a report chosen by the file extension
func WriteFile(path, title string, results []batch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		err = WriteXLSX(f, title, results)
	case ".pdf":
		err = WritePDF(f, title, results)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
