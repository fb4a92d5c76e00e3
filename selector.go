package ifs

// selector picks the index of the next map.
type selector interface {
	choose(r Rand) int
}

// uniform chooses each of n maps with equal probability.
type uniform int

func (n uniform) choose(r Rand) int {
	// u*n can round up to n for u close to 1.
	return min(int(r.Float64()*float64(n)), int(n)-1)
}

// weighted chooses maps with probability proportional to their weight.
//
// cumulative has one entry more than there are maps, with cumulative[0] == 0
// and cumulative[i+1]-cumulative[i] being the weight of map i.
type weighted struct {
	cumulative []float64
}

func newWeighted(maps []Map) weighted {
	cum := make([]float64, len(maps)+1)
	for i, m := range maps {
		cum[i+1] = cum[i] + m.Weight
	}
	return weighted{cumulative: cum}
}

func (w weighted) total() float64 {
	return w.cumulative[len(w.cumulative)-1]
}

// choose returns the first map whose upper cumulative bound is at least the
// random draw. When all weights are zero, the draw and every bound are zero
// and the first map is chosen. If no bound matches, which can only happen
// with negative or NaN weights, the last map is chosen.
func (w weighted) choose(r Rand) int {
	u := r.Float64() * w.total()
	n := len(w.cumulative) - 1
	for i := range n {
		if w.cumulative[i+1] >= u {
			return i
		}
	}
	return n - 1
}
