package gnssdist

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The geoms are gonum plotters. They are added to a panel in drawing
// order: panel background and grid first, then the band, then the bars.

// -------------------------------------------------------------------------
// Geom Panel

// GeomPanel fills the data area of a panel with the panel background.
type GeomPanel struct {
	Style AesMapping // fill is the background
}

var _ plot.Plotter = GeomPanel{}

func (g GeomPanel) Plot(c draw.Canvas, p *plot.Plot) {
	fill := g.Style.Fill()
	if fill == nil {
		return
	}
	c.FillPolygon(fill, rectangle(c.Min.X, c.Min.Y, c.Max.X, c.Max.Y))
}

// Grid returns the horizontal grid lines in the style of g.
func (g GeomPanel) Grid() *plotter.Grid {
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = g.Style.Color()
	grid.Horizontal.Width = g.Style.Size()
	grid.Horizontal.Dashes = g.Style.LineType().Dashes()
	return grid
}

// -------------------------------------------------------------------------
// Geom Band

// GeomBand shades the vertical span [Min, Max] over the full height of
// the panel.
type GeomBand struct {
	Band
	Style AesMapping
}

var (
	_ plot.Plotter    = GeomBand{}
	_ plot.DataRanger = GeomBand{}
)

func (b GeomBand) Plot(c draw.Canvas, p *plot.Plot) {
	fill := b.Style.Fill()
	if fill == nil {
		return
	}
	trX, _ := p.Transforms(&c)
	x0, x1 := trX(b.Min), trX(b.Max)
	c.FillPolygon(fill, c.ClipPolygonX(rectangle(x0, c.Min.Y, x1, c.Max.Y)))
}

// DataRange covers the band horizontally and nothing vertically.
func (b GeomBand) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.Min, b.Max, math.Inf(+1), math.Inf(-1)
}

// -------------------------------------------------------------------------
// Geom Bar

// GeomBar draws one bar per value at x = 0, 1, ..., n-1.
type GeomBar struct {
	Values []float64
	Width  vg.Length // absolute bar width
	Style  AesMapping
}

// Construct converts b to a gonum bar chart. Missing (NaN) and infinite
// values become bars of height zero.
func (b GeomBar) Construct() (*plotter.BarChart, error) {
	vals := make(plotter.Values, len(b.Values))
	for i, v := range b.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vals[i] = v
	}
	bars, err := plotter.NewBarChart(vals, b.Width)
	if err != nil {
		return nil, err
	}
	bars.Color = b.Style.Fill()
	bars.LineStyle.Color = b.Style.Color()
	bars.LineStyle.Width = b.Style.Size()
	bars.LineStyle.Dashes = b.Style.LineType().Dashes()
	if bars.LineStyle.Width == 0 {
		bars.LineStyle.Color = color.Transparent
	}
	return bars, nil
}

func rectangle(x0, y0, x1, y1 vg.Length) []vg.Point {
	return []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}
