package gnssdist

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
)

func TestScale(t *testing.T) {
	s := NewScale(0)
	if s.Trained() {
		t.Errorf("New scale is trained")
	}
	if min, max := s.Range(); min != 0 || max != 1 {
		t.Errorf("Untrained range [%g,%g]", min, max)
	}

	s.Train(3, math.NaN(), -1, math.Inf(1))
	s.Train(7)
	if s.DomainMin != -1 || s.DomainMax != 7 {
		t.Errorf("Bad training: %s", s)
	}

	s.Expand = 0.05
	if min, max := s.Range(); math.Abs(min+1.4) > 1e-12 || math.Abs(max-7.4) > 1e-12 {
		t.Errorf("Expanded range [%g,%g]", min, max)
	}
}

func TestScaleDegenerate(t *testing.T) {
	s := NewScale(0)
	s.Train(2, 2)
	if min, max := s.Range(); min != 1 || max != 3 {
		t.Errorf("Degenerate range [%g,%g]", min, max)
	}
}

func TestScaleApply(t *testing.T) {
	s := NewScale(0)
	s.Train(-0.5, 4.5)
	p := plot.New()
	s.Apply(&p.X)
	if p.X.Min != -0.5 || p.X.Max != 4.5 {
		t.Errorf("Axis range [%g,%g]", p.X.Min, p.X.Max)
	}
}
