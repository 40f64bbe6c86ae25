package gnssdist

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// Scale is a continuous position scale shared by all panels of a figure.
// It is trained on the data of every panel and then applied to each
// panel's axis so that all panels show the same range.
type Scale struct {
	DomainMin float64
	DomainMax float64

	// Expand is the fraction of the domain added on both ends.
	Expand float64
}

// NewScale returns an untrained scale.
func NewScale(expand float64) *Scale {
	return &Scale{
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
		Expand:    expand,
	}
}

// Train updates the domain of s to cover values. NaN and infinite values
// are ignored.
func (s *Scale) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Trained reports whether s has seen at least one finite value.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Range is the expanded domain. An untrained scale has range [0,1], a
// degenerate domain is widened by one unit on each side.
func (s *Scale) Range() (min, max float64) {
	if !s.Trained() {
		return 0, 1
	}
	min, max = s.DomainMin, s.DomainMax
	if min == max {
		min -= 1
		max += 1
	}
	expand := (max - min) * s.Expand
	return min - expand, max + expand
}

// Apply sets the range of axis to the range of s.
func (s *Scale) Apply(axis *plot.Axis) {
	axis.Min, axis.Max = s.Range()
}

func (s *Scale) String() string {
	min, max := s.Range()
	return fmt.Sprintf("domain=[%.3f,%.3f] expanded=[%.3f,%.3f]",
		s.DomainMin, s.DomainMax, min, max)
}
