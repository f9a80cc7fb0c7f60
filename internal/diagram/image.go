package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/toruinaba/structools/internal/section"
)

var (
	steelFill    = color.RGBA{R: 176, G: 190, B: 197, A: 255}
	concreteFill = color.RGBA{R: 215, G: 204, B: 200, A: 255}
	rebarColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// imageFormats lists the extensions plot.Save can write
var imageFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// ExportImage draws the section outline to an image file whose format follows
// the extension; an unknown extension gets ".png" appended. It returns the
// path actually written.
func ExportImage(d Data, filename string) (string, error) {
	p, err := newSectionPlot(d)
	if err != nil {
		return "", err
	}

	if !imageFormats[strings.ToLower(filepath.Ext(filename))] {
		filename += ".png"
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	width, height := canvasSize(d)
	if err := p.Save(width, height, filename); err != nil {
		return "", fmt.Errorf("save diagram: %w", err)
	}
	return filename, nil
}

func newSectionPlot(d Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	lo, hi := d.bounds()
	margin := 0.15 * max(hi.X-lo.X, hi.Y-lo.Y)
	p.X.Min, p.X.Max = lo.X-margin, hi.X+margin
	p.Y.Min, p.Y.Max = lo.Y-margin, hi.Y+margin

	rings := make([]plotter.XYer, 0, len(d.Outline))
	for _, poly := range d.Outline {
		rings = append(rings, ring(poly))
	}
	shape, err := plotter.NewPolygon(rings...)
	if err != nil {
		return nil, err
	}
	shape.Color = steelFill
	if d.Kind == section.KindRCRectangular {
		shape.Color = concreteFill
	}
	shape.LineStyle.Width = vg.Points(1.5)
	shape.LineStyle.Color = color.Black
	p.Add(shape)

	if len(d.Rebars) > 0 {
		if err := addRebars(p, d); err != nil {
			return nil, err
		}
	}

	if d.NeutralAxis != nil {
		naY := hi.Y - *d.NeutralAxis
		naLine, err := plotter.NewLine(plotter.XYs{
			{X: lo.X - margin/2, Y: naY},
			{X: hi.X + margin/2, Y: naY},
		})
		if err != nil {
			return nil, err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = axisColor
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)
		if err := addLabel(p, hi.X+margin/2, naY, "N.A."); err != nil {
			return nil, err
		}
	}

	centroid, err := plotter.NewScatter(plotter.XYs{{X: d.Centroid.X, Y: d.Centroid.Y}})
	if err != nil {
		return nil, err
	}
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	centroid.GlyphStyle.Radius = vg.Points(5)
	centroid.GlyphStyle.Color = color.Black
	p.Add(centroid)
	p.Legend.Add("centroid", centroid)

	if d.ShearCenter != nil {
		sc, err := plotter.NewScatter(plotter.XYs{{X: d.ShearCenter.X, Y: d.ShearCenter.Y}})
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.RingGlyph{}
		sc.GlyphStyle.Radius = vg.Points(6)
		sc.GlyphStyle.Color = axisColor
		p.Add(sc)
		p.Legend.Add("shear center", sc)
	}

	return p, nil
}

// addRebars spreads three bar markers across the solid width of every layer
func addRebars(p *plot.Plot, d Data) error {
	var pts plotter.XYs
	for _, layer := range d.Rebars {
		xs := section.IntersectionsAtY(d.Outline, layer.Y)
		if len(xs) < 2 {
			continue
		}
		left, right := xs[0], xs[len(xs)-1]
		for _, f := range []float64{0.15, 0.5, 0.85} {
			pts = append(pts, plotter.XY{X: left + f*(right-left), Y: layer.Y})
		}
		if err := addLabel(p, right, layer.Y, fmt.Sprintf(" As=%.0fmm²", layer.Area)); err != nil {
			return err
		}
	}
	if len(pts) == 0 {
		return nil
	}

	bars, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Color = rebarColor
	bars.GlyphStyle.Radius = vg.Points(4)
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bars)
	p.Legend.Add("reinforcement", bars)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func ring(poly section.Polygon) plotter.XYs {
	xys := make(plotter.XYs, len(poly))
	for i, v := range poly {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

// canvasSize keeps the drawing roughly to scale: 6 inches wide, with the
// height following the section's aspect ratio within sensible limits
func canvasSize(d Data) (vg.Length, vg.Length) {
	lo, hi := d.bounds()
	ratio := (hi.Y - lo.Y) / (hi.X - lo.X)
	ratio = max(0.5, min(ratio, 2.5))
	return 6 * vg.Inch, vg.Length(ratio) * 6 * vg.Inch
}
