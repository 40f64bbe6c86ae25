package gnssdist

import "fmt"

// BandHalfWidth is the half width of the PRres band in bins.
const BandHalfWidth = 2

// Band is a vertical span [Min, Max] on the category axis.
type Band struct {
	Center, Min, Max float64
}

func (b Band) String() string {
	return fmt.Sprintf("[%g, %g] around %g", b.Min, b.Max, b.Center)
}

// PRresBand returns the band marking the good residual zone of a PRres
// plot with nrows bins. The center is nrows/2 (integer division) for an
// odd number of rows and nrows/2 - 0.5 for an even number, i.e. the
// middle bin or the boundary between the two middle bins.
func PRresBand(nrows int) Band {
	q, r := nrows/2, nrows%2
	center := float64(q)
	if r == 0 {
		center -= 0.5
	}
	return Band{
		Center: center,
		Min:    center - BandHalfWidth,
		Max:    center + BandHalfWidth,
	}
}

// BandFor returns the band to draw for obs or false if obs has none.
func BandFor(obs ObsName, nrows int) (Band, bool) {
	if obs != PRres {
		return Band{}, false
	}
	return PRresBand(nrows), true
}
