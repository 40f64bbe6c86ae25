package gnssdist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ObsName names the plotted observable.
type ObsName string

const (
	CN0   ObsName = "CN0"   // carrier-to-noise density ratio
	PRres ObsName = "PRres" // pseudorange residual
)

var ErrUnknownObs = errors.New("gnssdist: unknown observable")

// ParseObsName converts s, case insensitive, to an ObsName.
func ParseObsName(s string) (ObsName, error) {
	for _, obs := range []ObsName{CN0, PRres} {
		if strings.EqualFold(s, string(obs)) {
			return obs, nil
		}
	}
	return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownObs, s, CN0, PRres)
}

// Context describes where a distribution plot comes from and where it goes.
type Context struct {
	Dir     string // output directory, figures go to Dir/png
	PosFile string // name of the source position file
	Date    string // survey date
}

// PNGDir is the directory the figures are written to.
func (c Context) PNGDir() string {
	return filepath.Join(c.Dir, "png")
}

// PNGName is the file name of the figure for constellation and obs:
//     <Dir>/png/<base of PosFile without extension>-<constellation>-<obs>-dist.png
func PNGName(c Context, constellation string, obs ObsName) string {
	base := filepath.Base(c.PosFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(c.PNGDir(), fmt.Sprintf("%s-%s-%s-dist.png", base, constellation, obs))
}

// BinLabel is the elevation bin part of a column name, everything after
// the three letter constellation prefix.
func BinLabel(column string) string {
	if len(column) < 3 {
		return ""
	}
	return column[3:]
}

// FigureTitle is the title of the figure for constellation.
func FigureTitle(c Context, constellation string, obs ObsName) string {
	return fmt.Sprintf("%s - %s - %s: %s Statistics", constellation, c.PosFile, c.Date, obs)
}
