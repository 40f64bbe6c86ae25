package gnssdist

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// DefaultConstellations are the constellation prefixes looked for in a
// table, in plotting order.
var DefaultConstellations = []string{"GAL", "GPS"}

// Rendered is a saved figure kept for display.
type Rendered struct {
	Constellation string
	Path          string
	Image         image.Image
}

// Viewer displays rendered figures. View blocks until the user is done.
type Viewer interface {
	View(title string, figures []Rendered) error
}

// Plotter draws elevation distribution figures.
// The zero value is usable and plots GAL and GPS with the DefaultTheme.
type Plotter struct {
	// Constellations to look for; nil means DefaultConstellations.
	// Duplicates are plotted once.
	Constellations []string

	Theme Theme

	// Figure geometry; zero values select the defaults.
	Width, Height vg.Length
	DPI           int

	// Viewer is used if a plot is requested with show. A nil Viewer
	// skips the display with a warning.
	Viewer Viewer

	// Log receives progress (info) and intermediate values (debug).
	// Nil logs to the logrus standard logger.
	Log logrus.FieldLogger
}

// PlotElevDistribution plots the distribution of obs as function of the
// elevation bins in t for every constellation found in t. It returns the
// names of the written PNG files.
func PlotElevDistribution(c Context, t *Table, obs ObsName, log logrus.FieldLogger, show bool) ([]string, error) {
	pl := &Plotter{Log: log}
	return pl.Plot(c, t, obs, show)
}

func (pl *Plotter) logger() logrus.FieldLogger {
	if pl.Log == nil {
		return logrus.StandardLogger()
	}
	return pl.Log
}

func (pl *Plotter) constellations() []string {
	if pl.Constellations == nil {
		return DefaultConstellations
	}
	return Unique(pl.Constellations)
}

// Plot writes one PNG per constellation present in t and, if show is set,
// hands all of them to the Viewer afterwards. Constellations without a
// matching column are skipped.
func (pl *Plotter) Plot(c Context, t *Table, obs ObsName, show bool) ([]string, error) {
	log := pl.logger().WithField("obs", obs)
	log.Infof("creating %s distribution plot", obs)
	log.Debugf("input %s", t.HeadTail(5))

	var files []string
	var shown []Rendered
	for _, gnss := range pl.constellations() {
		cols := ColumnsWithPrefix(t, gnss)
		log.Debugf("%s columns = %v", gnss, cols)
		if len(cols) == 0 {
			continue
		}

		log.Infof("creating %s distribution plot for %s", obs, gnss)
		fig, err := pl.figure(c, t, obs, gnss, cols, log)
		if err != nil {
			return files, fmt.Errorf("%s %s figure: %w", gnss, obs, err)
		}

		if err := os.MkdirAll(c.PNGDir(), 0755); err != nil {
			return files, fmt.Errorf("creating png directory: %w", err)
		}
		name := PNGName(c, gnss, obs)
		img, err := fig.Save(name)
		if err != nil {
			return files, fmt.Errorf("saving %s: %w", name, err)
		}
		log.Infof("saved %s", name)
		files = append(files, name)

		if show {
			shown = append(shown, Rendered{Constellation: gnss, Path: name, Image: img})
		}
	}

	if len(shown) == 0 {
		return files, nil
	}
	if pl.Viewer == nil {
		log.Warn("no viewer available, not showing the plots")
		return files, nil
	}
	title := fmt.Sprintf("%s - %s: %s distribution", c.PosFile, c.Date, obs)
	if err := pl.Viewer.View(title, shown); err != nil {
		return files, fmt.Errorf("showing plots: %w", err)
	}
	return files, nil
}

// figure lays out one bar panel per column. All panels share the x and
// y range.
func (pl *Plotter) figure(c Context, t *Table, obs ObsName, gnss string, cols []string, log logrus.FieldLogger) (*Figure, error) {
	theme := pl.Theme.merged()
	rows, ncols := GridSize(len(cols), PanelColumns)
	log.Debugf("%s: %d panels in %dx%d grid", gnss, len(cols), rows, ncols)

	fig := NewFigure(FigureTitle(c, gnss, obs), rows, ncols)
	fig.TitleSize = theme.TitleSize
	if pl.Width > 0 && pl.Height > 0 {
		fig.Width, fig.Height = pl.Width, pl.Height
	}
	if pl.DPI > 0 {
		fig.DPI = pl.DPI
	}

	n := t.N()
	xs, ys := NewScale(0), NewScale(0.05)
	xs.Train(-0.5, float64(n)-0.5)
	ys.Train(0)

	band, hasBand := BandFor(obs, n)
	if hasBand {
		log.Debugf("%s: band %s", gnss, band)
		xs.Train(band.Min, band.Max)
	}

	barWidth := pl.barWidth(fig, n, theme)
	for i, col := range cols {
		values := t.Column(col)
		ys.Train(values...)

		p := plot.New()
		p.Title.Text = "Elevation bin " + BinLabel(col)
		p.Title.TextStyle.Font = font.From(p.Title.TextStyle.Font, theme.PanelTitleSize)

		panel := GeomPanel{Style: theme.PanelStyle}
		p.Add(panel, panel.Grid())
		if hasBand {
			p.Add(GeomBand{Band: band, Style: theme.BandStyle})
		}
		bars, err := GeomBar{Values: values, Width: barWidth, Style: theme.BarStyle}.Construct()
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		p.Add(bars)

		if n > 0 {
			p.NominalX(t.Index...)
		}
		p.X.Tick.Label.Font = font.From(p.X.Tick.Label.Font, theme.TickSize)
		p.X.Tick.Label.Rotation = theme.TickRotation * math.Pi / 180
		p.X.Tick.Label.XAlign = text.XRight
		p.X.Tick.Label.YAlign = text.YCenter
		p.Y.Tick.Label.Font = font.From(p.Y.Tick.Label.Font, theme.TickSize)

		fig.Set(i, p)
	}

	log.Debugf("%s: x scale %s, y scale %s", gnss, xs, ys)
	fig.Each(func(p *plot.Plot) {
		xs.Apply(&p.X)
		ys.Apply(&p.Y)
	})
	return fig, nil
}

// barWidth is the absolute width of a bar: the theme's fraction of one
// category in a panel of fig.
func (pl *Plotter) barWidth(fig *Figure, n int, theme Theme) vg.Length {
	if n < 1 {
		n = 1
	}
	// Axes and labels take about a fifth of a tile.
	data := fig.TileWidth() * 0.8
	w := data / vg.Length(n) * vg.Length(theme.BarWidth)
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	return w
}
