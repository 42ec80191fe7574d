// Package viz renders farm layouts: boundary rings, turbine and substation
// markers, and optionally the solved cable routing. Output format follows
// the file extension (.png, .svg, .pdf).
package viz

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/skagerrak/windplan/collection"
	"github.com/skagerrak/windplan/geom"
)

// ErrEmptyPlot indicates a spec with nothing to draw.
var ErrEmptyPlot = errors.New("viz: nothing to draw")

// limBuffer pads the axis limits by 5% of the data span.
const limBuffer = 0.05

// Segment is one cable to draw, in farm coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Spec describes one farm figure.
type Spec struct {
	Title string

	Boundaries []geom.Ring

	XTurbines, YTurbines       []float64
	XSubstations, YSubstations []float64

	Cables []Segment
}

// CableSegments builds the drawable cable set from an extraction and the
// coordinate table: one segment per turbine, from the turbine to its terse
// target. Detour geometry is not reconstructed; the logical cable is drawn
// straight, matching the collection outputs it illustrates.
func CableSegments(ex *collection.Extraction, coords *collection.Coordinates) ([]Segment, error) {
	out := make([]Segment, 0, len(ex.TerseLinks))
	for i, target := range ex.TerseLinks {
		x1, y1, err := coords.At(i)
		if err != nil {
			return nil, err
		}
		x2, y2, err := coords.At(target)
		if err != nil {
			return nil, err
		}
		out = append(out, Segment{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	return out, nil
}

// Render draws the spec and saves it at path; the extension picks the
// format. The canvas is 15×15 cm.
func Render(path string, spec Spec) error {
	p, err := build(spec)
	if err != nil {
		return err
	}
	if err := p.Save(15*vg.Centimeter, 15*vg.Centimeter, path); err != nil {
		return fmt.Errorf("viz: save figure: %w", err)
	}
	return nil
}

// build assembles the plot so Render stays a thin save wrapper.
func build(spec Spec) (*plot.Plot, error) {
	if len(spec.XTurbines) == 0 && len(spec.Boundaries) == 0 {
		return nil, ErrEmptyPlot
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "easting [m]"
	p.Y.Label.Text = "northing [m]"

	for _, cable := range spec.Cables {
		ln, err := plotter.NewLine(plotter.XYs{
			{X: cable.X1, Y: cable.Y1},
			{X: cable.X2, Y: cable.Y2},
		})
		if err != nil {
			return nil, fmt.Errorf("viz: cable line: %w", err)
		}
		ln.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
		p.Add(ln)
	}

	for _, ring := range spec.Boundaries {
		xys := make(plotter.XYs, 0, ring.NumVertices()+1)
		for _, pt := range ring.Closed() {
			xys = append(xys, plotter.XY{X: pt[0], Y: pt[1]})
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("viz: boundary line: %w", err)
		}
		ln.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		ln.Color = color.Gray{Y: 0x30}
		p.Add(ln)
	}

	if len(spec.XTurbines) > 0 {
		sc, err := scatter(spec.XTurbines, spec.YTurbines)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}
	if len(spec.XSubstations) > 0 {
		sc, err := scatter(spec.XSubstations, spec.YSubstations)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.PyramidGlyph{}
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Color = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
		p.Add(sc)
	}

	applyLimits(p, spec)
	return p, nil
}

func scatter(x, y []float64) (*plotter.Scatter, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("viz: %d x, %d y coordinates", len(x), len(y))
	}
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("viz: scatter: %w", err)
	}
	return sc, nil
}

// applyLimits pads the data span by limBuffer, preferring the boundary
// extent when one is given so the site frames the figure.
func applyLimits(p *plot.Plot, spec Spec) {
	var minX, maxX, minY, maxY float64
	have := false

	grow := func(x, y float64) {
		if !have {
			minX, maxX, minY, maxY = x, x, y, y
			have = true
			return
		}
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	if len(spec.Boundaries) > 0 {
		for _, ring := range spec.Boundaries {
			b := ring.Bound()
			grow(b.Min[0], b.Min[1])
			grow(b.Max[0], b.Max[1])
		}
	} else {
		for i := range spec.XTurbines {
			grow(spec.XTurbines[i], spec.YTurbines[i])
		}
		for i := range spec.XSubstations {
			grow(spec.XSubstations[i], spec.YSubstations[i])
		}
	}
	if !have {
		return
	}

	dx, dy := maxX-minX, maxY-minY
	p.X.Min, p.X.Max = minX-limBuffer*dx, maxX+limBuffer*dx
	p.Y.Min, p.Y.Max = minY-limBuffer*dy, maxY+limBuffer*dy
}
