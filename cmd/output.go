package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/toruinaba/structools/internal/batch"
	"github.com/toruinaba/structools/internal/section"
)

const rule = "───────────────────────────────────────────────────────────────"

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (table, json, yaml)", format)
}

// encode writes v as JSON or YAML
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return validFormat(format)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", len([]rune(rule))))
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, strings.Repeat("═", len([]rune(rule))))
	fmt.Fprintln(w)
}

// printProperties prints the properties record of one result
func printProperties(w io.Writer, r batch.Result) {
	p := r.Properties

	fmt.Fprintf(w, "  Section: %s (%s)\n", r.Name, section.Kind(r.Kind).Label())
	fmt.Fprintln(w)

	heading(w, "GEOMETRIC PROPERTIES:")
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "  Area (A):\t%.2f mm²\n", p.Area)
	fmt.Fprintf(tw, "  Centroid (x, y):\t(%.3f, %.3f) mm\n", p.Centroid.X, p.Centroid.Y)
	fmt.Fprintf(tw, "  Moment of inertia, strong (Ix):\t%.6g mm⁴\n", p.MomentOfInertiaStrong)
	fmt.Fprintf(tw, "  Moment of inertia, weak (Iy):\t%.6g mm⁴\n", p.MomentOfInertiaWeak)
	fmt.Fprintf(tw, "  Section modulus, strong (Zx):\t%.6g mm³\n", p.SectionModulusStrong)
	fmt.Fprintf(tw, "  Section modulus, weak (Zy):\t%.6g mm³\n", p.SectionModulusWeak)
	fmt.Fprintf(tw, "  Torsion constant (J):\t%.6g mm⁴\n", p.TorsionConstant)
	fmt.Fprintf(tw, "  Warping constant (Cw):\t%.6g mm⁶\n", p.WarpingConstant)
	tw.Flush()
	fmt.Fprintln(w)

	if p.Steel != nil {
		heading(w, "STEEL PROPERTIES:")
		tw = newTabWriter(w)
		fmt.Fprintf(tw, "  Plastic moment, strong (Mpx):\t%.6g mm³\n", p.Steel.PlasticMomentX)
		fmt.Fprintf(tw, "  Plastic moment, weak (Mpy):\t%.6g mm³\n", p.Steel.PlasticMomentY)
		fmt.Fprintf(tw, "  Shear center (x, y):\t(%.3f, %.3f) mm\n", p.Steel.ShearCenter.X, p.Steel.ShearCenter.Y)
		tw.Flush()
		fmt.Fprintln(w)
	}

	if p.Concrete != nil {
		heading(w, "REINFORCED CONCRETE:")
		tw = newTabWriter(w)
		fmt.Fprintf(tw, "  Modular ratio (n):\t%.3f\n", p.Concrete.ModularRatio)
		fmt.Fprintf(tw, "  Cracked neutral axis (c):\t%.2f mm\n", p.Concrete.Cracked.NeutralAxis)
		fmt.Fprintf(tw, "  Cracked inertia (Icr):\t%.6g mm⁴\n", p.Concrete.Cracked.MomentOfInertia)
		fmt.Fprintf(tw, "  Cracking moment (Mcr):\t%.2f kN-m\n", p.Concrete.CrackingMoment/1e6)
		tw.Flush()
		fmt.Fprintln(w)
	}
}

// widthThicknessLines renders a check for a summary box
func widthThicknessLines(c section.WidthThicknessCheck) []string {
	line := func(element string, rc section.RatioCheck) string {
		mark := "✓"
		if rc.Status != section.StatusOK {
			mark = "✗"
		}
		return fmt.Sprintf("%-7s %7.2f ≤ %6.2f  %s %s", element, rc.Ratio, rc.Limit, rc.Status, mark)
	}
	return []string{
		line("Web", c.Web),
		line("Flange", c.Flange),
	}
}
