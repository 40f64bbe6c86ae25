package gnssdist

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default figure geometry: 20 x 12 inch at 100 dpi.
const (
	DefaultWidth  = 20 * vg.Inch
	DefaultHeight = 12 * vg.Inch
	DefaultDPI    = 100
)

// Figure is a grid of panels below a common title.
type Figure struct {
	Title     string
	TitleSize vg.Length

	Rows, Cols int

	// Panels[row][col]; nil panels leave their cell empty.
	Panels [][]*plot.Plot

	Width, Height vg.Length
	DPI           int
}

// NewFigure returns a figure with an empty rows x cols panel grid.
func NewFigure(title string, rows, cols int) *Figure {
	panels := make([][]*plot.Plot, rows)
	for r := range panels {
		panels[r] = make([]*plot.Plot, cols)
	}
	return &Figure{
		Title:     title,
		TitleSize: DefaultTheme.TitleSize,
		Rows:      rows,
		Cols:      cols,
		Panels:    panels,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		DPI:       DefaultDPI,
	}
}

// Set places p as the i'th panel, counted row by row.
func (f *Figure) Set(i int, p *plot.Plot) {
	r, c := GridCell(i, f.Cols)
	f.Panels[r][c] = p
}

// Each calls fn for every non-empty panel.
func (f *Figure) Each(fn func(p *plot.Plot)) {
	for _, row := range f.Panels {
		for _, p := range row {
			if p != nil {
				fn(p)
			}
		}
	}
}

// TileWidth is the width of one cell of the panel grid.
func (f *Figure) TileWidth() vg.Length {
	t := f.tiles()
	return (f.Width - t.PadLeft - t.PadRight - vg.Length(f.Cols-1)*t.PadX) / vg.Length(f.Cols)
}

func (f *Figure) tiles() draw.Tiles {
	return draw.Tiles{
		Rows:      f.Rows,
		Cols:      f.Cols,
		PadTop:    2 * f.TitleSize,
		PadBottom: vg.Millimeter * 5,
		PadLeft:   vg.Millimeter * 5,
		PadRight:  vg.Millimeter * 5,
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
	}
}

// Render draws the figure on a new image canvas.
func (f *Figure) Render() *vgimg.Canvas {
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	dc := draw.New(img)

	if f.Title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, f.TitleSize),
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		}
		pt := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - f.TitleSize/2}
		dc.FillText(sty, pt, f.Title)
	}

	if f.Rows == 0 || f.Cols == 0 {
		return img
	}
	canvases := plot.Align(f.Panels, f.tiles(), dc)
	for r, row := range f.Panels {
		for c, p := range row {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
	return img
}

// WriteTo renders f and writes it as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: f.Render()}
	return png.WriteTo(w)
}

// Save renders f, writes it as PNG to path and returns the rendered image.
func (f *Figure) Save(path string) (img image.Image, err error) {
	canvas := f.Render()
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(fh)
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}
