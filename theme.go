package gnssdist

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// AesMapping holds the fixed aesthetics of a geom, e.g.
//     "fill":     color name or #rrggbb[aa]
//     "color":    line color
//     "alpha":    opacity in [0,1] applied to fill and color
//     "linetype": blank, solid, dashed, ...
//     "size":     line width in points
type AesMapping map[string]string

// Copy returns a shallow copy of m.
func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// MergeStyles merges the styles; set values in earlier mappings win.
// Empty values count as unset.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for a, v := range am {
			if v == "" {
				continue
			}
			if _, ok := merged[a]; ok {
				continue
			}
			merged[a] = v
		}
	}
	return merged
}

func (m AesMapping) alpha() float64 {
	s, ok := m["alpha"]
	if !ok {
		return 1
	}
	a, err := String2Float(s, 0, 1)
	if err != nil {
		return 1
	}
	return a
}

// Fill is the fill color of m with alpha applied. Nil if m has no fill.
func (m AesMapping) Fill() color.Color {
	s, ok := m["fill"]
	if !ok {
		return nil
	}
	return SetAlpha(String2Color(s), m.alpha())
}

// Color is the line color of m with alpha applied. Nil if m has no color.
func (m AesMapping) Color() color.Color {
	s, ok := m["color"]
	if !ok {
		return nil
	}
	return SetAlpha(String2Color(s), m.alpha())
}

// LineType of m, blank if unset.
func (m AesMapping) LineType() LineType {
	return String2LineType(m["linetype"])
}

// Size is the line width of m. Zero for blank lines.
func (m AesMapping) Size() vg.Length {
	if m.LineType() == BlankLine {
		return 0
	}
	s, ok := m["size"]
	if !ok {
		return vg.Points(0.5)
	}
	w, err := String2Float(s, 0, 20)
	if err != nil {
		return vg.Points(0.5)
	}
	return vg.Points(w)
}

// -------------------------------------------------------------------------
// Theme

// Theme controls the look of the distribution figures.
type Theme struct {
	// PanelStyle is the panel background (fill) and the grid lines (color).
	PanelStyle AesMapping
	BarStyle   AesMapping
	BandStyle  AesMapping

	// BarWidth is the fraction of one category covered by a bar.
	BarWidth float64

	TitleSize, PanelTitleSize, TickSize vg.Length

	// TickRotation is the rotation of the x tick labels in degrees.
	TickRotation float64
}

// DefaultTheme mimics ggplot2: gray panels, white grid, blue translucent
// bars without border and a light green PRres band.
var DefaultTheme = Theme{
	PanelStyle: AesMapping{
		"fill":     "gray92",
		"color":    "white",
		"linetype": "solid",
		"size":     "1",
	},
	BarStyle: AesMapping{
		"fill":     "blue",
		"color":    "gray20",
		"alpha":    "0.5",
		"linetype": "blank",
	},
	BandStyle: AesMapping{
		"fill":  "green",
		"alpha": "0.2",
	},
	BarWidth:       0.8,
	TitleSize:      vg.Points(24),
	PanelTitleSize: vg.Points(16),
	TickSize:       vg.Points(10),
	TickRotation:   65,
}

// merged returns th with unset fields taken from DefaultTheme.
func (th Theme) merged() Theme {
	m := th
	m.PanelStyle = MergeStyles(th.PanelStyle, DefaultTheme.PanelStyle)
	m.BarStyle = MergeStyles(th.BarStyle, DefaultTheme.BarStyle)
	m.BandStyle = MergeStyles(th.BandStyle, DefaultTheme.BandStyle)
	if m.BarWidth <= 0 || m.BarWidth > 1 {
		m.BarWidth = DefaultTheme.BarWidth
	}
	if m.TitleSize <= 0 {
		m.TitleSize = DefaultTheme.TitleSize
	}
	if m.PanelTitleSize <= 0 {
		m.PanelTitleSize = DefaultTheme.PanelTitleSize
	}
	if m.TickSize <= 0 {
		m.TickSize = DefaultTheme.TickSize
	}
	if m.TickRotation == 0 {
		m.TickRotation = DefaultTheme.TickRotation
	}
	return m
}
