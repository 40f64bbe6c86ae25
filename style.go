package gnssdist

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// String2Float parses s as a float and clamps it to [low, high].
// A trailing "%" divides the value by 100.
func String2Float(s string, low, high float64) (float64, error) {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse style %q as float: %w", s, err)
	}
	value /= factor

	if value < low {
		return low, nil
	} else if value > high {
		return high, nil
	}
	return value, nil
}

// SetAlpha returns c with its alpha set to a, a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		return nil
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(a*float64(0xff) + 0.5)
	return nc
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(LongdashLine) + 1))
	}
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt as used by vg.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(1), vg.Points(2), vg.Points(4), vg.Points(2)}
	case LongdashLine:
		return []vg.Length{vg.Points(8), vg.Points(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"gray92":  {0xeb, 0xeb, 0xeb, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color converts "#rrggbb", "#rrggbbaa" or one of the BuiltinColors
// to a color. Anything else yields a pinkish, half transparent color which
// is easy to spot in a plot.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
