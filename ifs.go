package ifs

import (
	"iter"
	"slices"
)

// IFS runs the chaos game on an iterated function system.
//
// Each call to [IFS.Iterate] chooses one of the system's maps at random,
// applies it to the current point and makes the result the new current point.
// The resulting sequence of points approximates the system's attractor. The
// first few points still lie near the starting point; discarding them is up
// to the caller.
//
// An IFS is not safe for concurrent use. Each point depends on the previous
// one, so there is nothing to be gained from sharing an IFS between
// goroutines; create one per goroutine instead.
type IFS struct {
	maps   []Map
	colors []Color
	sel    selector
	rng    Rand

	pt   Point
	last int
}

// State is the iteration state of an IFS: the current point and the index of
// the map that produced it. Index is -1 before the first iteration.
type State struct {
	Point Point
	Index int
}

// Option configures an IFS during creation.
type Option func(*options)

type options struct {
	rng   Rand
	start Point
}

// WithRand sets the source of randomness. By default, each IFS uses its own
// generator seeded from the runtime's entropy source.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithStart sets the starting point. The default is the origin.
func WithStart(pt Point) Option {
	return func(o *options) {
		o.start = pt
	}
}

// New creates an IFS from rows of coefficients, each of the form
// "a b c d e f [weight]", and optional per-map colors.
//
// Either all rows must have 7 entries, in which case maps are chosen with
// probability proportional to their weights, or all rows must have 6
// entries, in which case maps are chosen uniformly. Weights are used as
// given; a system whose weights are all zero always chooses its first map.
//
// If fewer colors than maps are given, the missing colors are drawn at random.
// Surplus colors are kept but never used. The colors slice is not retained.
//
// New returns [ErrEmptySystem], a *[MalformedMapError] or a
// *[InconsistentRowLengthError] for invalid systems.
func New(rows [][]float64, colors []Color, opts ...Option) (*IFS, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySystem
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newEntropyRand()
	}

	want := len(rows[0])
	maps := make([]Map, len(rows))
	for i, row := range rows {
		m, err := newMap(i, row)
		if err != nil {
			return nil, err
		}
		if len(row) != want {
			return nil, &InconsistentRowLengthError{Row: i, Len: len(row), Want: want}
		}
		maps[i] = m
	}

	var sel selector
	if maps[0].Weighted {
		sel = newWeighted(maps)
	} else {
		sel = uniform(len(maps))
	}

	cs := make([]Color, len(colors), max(len(colors), len(maps)))
	copy(cs, colors)
	for len(cs) < len(maps) {
		cs = append(cs, randomColor(o.rng))
	}

	Logger().Debug("ifs: created system",
		"maps", len(maps),
		"weighted", maps[0].Weighted,
		"generated_colors", max(0, len(maps)-len(colors)))

	return &IFS{
		maps:   maps,
		colors: cs,
		sel:    sel,
		rng:    o.rng,
		pt:     o.start,
		last:   -1,
	}, nil
}

// Choose chooses a map at random and records it as the most recently chosen
// map. It returns the map's index. It does not change the current point.
func (s *IFS) Choose() int {
	s.last = s.sel.choose(s.rng)
	return s.last
}

// Iterate advances the chaos game by one step and returns the new current
// point.
func (s *IFS) Iterate() Point {
	i := s.Choose()
	s.pt = s.maps[i].Apply(s.pt)
	return s.pt
}

// Color returns the color of the most recently chosen map, or
// [ErrNoIterationYet] if no map has been chosen yet.
func (s *IFS) Color() (Color, error) {
	return s.ColorOf(s.State())
}

// ColorOf returns the color of the map that produced st.
func (s *IFS) ColorOf(st State) (Color, error) {
	if st.Index < 0 {
		return 0, ErrNoIterationYet
	}
	return s.colors[st.Index], nil
}

// State returns the current iteration state.
func (s *IFS) State() State {
	return State{Point: s.pt, Index: s.last}
}

// Step computes the state following st without modifying s's own state,
// except for drawing from its source of randomness.
func (s *IFS) Step(st State) State {
	i := s.sel.choose(s.rng)
	return State{Point: s.maps[i].Apply(st.Point), Index: i}
}

// Points returns an infinite sequence of points and the colors of the maps
// that produced them. Each step of the sequence calls [IFS.Iterate].
func (s *IFS) Points() iter.Seq2[Point, Color] {
	return func(yield func(Point, Color) bool) {
		for {
			pt := s.Iterate()
			if !yield(pt, s.colors[s.last]) {
				return
			}
		}
	}
}

// Point returns the current point.
func (s *IFS) Point() Point { return s.pt }

// Len returns the number of maps.
func (s *IFS) Len() int { return len(s.maps) }

// Weighted reports whether maps are chosen according to their weights.
func (s *IFS) Weighted() bool {
	_, ok := s.sel.(weighted)
	return ok
}

// Maps returns a copy of the system's maps.
func (s *IFS) Maps() []Map { return slices.Clone(s.maps) }

// Colors returns a copy of the colors, including generated and surplus ones.
func (s *IFS) Colors() []Color { return slices.Clone(s.colors) }

// Cumulative returns a copy of the cumulative weight table, which has one
// more entry than there are maps. It returns nil for unweighted systems.
func (s *IFS) Cumulative() []float64 {
	if w, ok := s.sel.(weighted); ok {
		return slices.Clone(w.cumulative)
	}
	return nil
}

// Contractive reports whether every map is a contraction. The chaos game only
// converges to an attractor for contractive systems.
func (s *IFS) Contractive() bool {
	for _, m := range s.maps {
		if !(m.Lipschitz() < 1) {
			return false
		}
	}
	return true
}
