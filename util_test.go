package ifs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// scripted is a Rand that returns a fixed sequence of values, cycling when it
// runs out.
type scripted struct {
	vals []float64
	n    int
}

func script(vals ...float64) *scripted {
	return &scripted{vals: vals}
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}
