package ifs

// Map is a single affine map of an iterated function system, optionally
// carrying a selection weight.
//
// The weight is only meaningful if Weighted is true. Whether a system is
// weighted is decided by all of its maps together; see [New].
type Map struct {
	Affine
	Weight   float64
	Weighted bool
}

// NewMap creates a map from a row of coefficients "a b c d e f [weight]".
// Rows of 6 numbers produce unweighted maps, rows of 7 numbers weighted ones.
// Any other length results in a *[MalformedMapError].
func NewMap(row []float64) (Map, error) {
	return newMap(-1, row)
}

func newMap(idx int, row []float64) (Map, error) {
	switch len(row) {
	case 6:
		return Map{Affine: NewAffine([6]float64(row))}, nil
	case 7:
		return Map{Affine: NewAffine([6]float64(row[:6])), Weight: row[6], Weighted: true}, nil
	default:
		return Map{}, &MalformedMapError{Row: idx, Len: len(row)}
	}
}

// Row returns the coefficients of m in the row form accepted by [NewMap].
func (m Map) Row() []float64 {
	c := m.Coefficients()
	if m.Weighted {
		return append(c[:], m.Weight)
	}
	return c[:]
}
