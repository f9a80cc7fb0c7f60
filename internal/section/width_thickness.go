package section

import (
	"math"

	"github.com/toruinaba/structools/internal/jis"
)

// Status is the outcome of a limit check
type Status string

const (
	StatusOK Status = "OK"
	StatusNG Status = "NG"
)

// RatioCheck compares one plate element's width-thickness ratio to its limit
type RatioCheck struct {
	Ratio  float64 `json:"ratio" yaml:"ratio"` // rounded to 2 decimals
	Limit  float64 `json:"limit" yaml:"limit"`
	Status Status  `json:"status" yaml:"status"`
}

// WidthThicknessCheck holds the web and flange checks for a steel grade
type WidthThicknessCheck struct {
	Grade  jis.Grade  `json:"grade" yaml:"grade"`
	Web    RatioCheck `json:"web" yaml:"web"`
	Flange RatioCheck `json:"flange" yaml:"flange"`
}

// OK reports whether every element is within its limit
func (c WidthThicknessCheck) OK() bool {
	return c.Web.Status == StatusOK && c.Flange.Status == StatusOK
}

// checkWidthThickness looks up the grade (SN400 when empty) and judges the
// web and flange ratios against the limits picked from its material
func checkWidthThickness(grade string, web, flange float64, limits func(jis.Material) jis.Limits) (WidthThicknessCheck, error) {
	if grade == "" {
		grade = string(jis.DefaultGrade)
	}
	m, err := jis.Lookup(grade)
	if err != nil {
		return WidthThicknessCheck{}, err
	}
	l := limits(m)
	return WidthThicknessCheck{
		Grade:  m.Grade,
		Web:    newRatioCheck(web, l.Web),
		Flange: newRatioCheck(flange, l.Flange),
	}, nil
}

func plateLimits(m jis.Material) jis.Limits { return m.Limits }

func tubeLimits(m jis.Material) jis.Limits { return m.TubeLimits() }

// newRatioCheck judges the unrounded ratio; only the reported value is rounded
func newRatioCheck(ratio, limit float64) RatioCheck {
	status := StatusOK
	if ratio > limit {
		status = StatusNG
	}
	return RatioCheck{
		Ratio:  math.Round(ratio*100) / 100,
		Limit:  limit,
		Status: status,
	}
}
