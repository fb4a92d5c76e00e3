package ifs_test

import (
	"fmt"

	"honnef.co/go/ifs"
)

func ExampleIFS_Iterate() {
	// A single map halving the distance to (2, 0). With only one map there is
	// nothing to choose, and the points converge on its fixed point.
	s, err := ifs.New([][]float64{{0.5, 0, 0, 0.5, 1, 0}}, []ifs.Color{0xff8000})
	if err != nil {
		panic(err)
	}
	for range 4 {
		pt := s.Iterate()
		c, _ := s.Color()
		fmt.Println(pt, c)
	}
	// Output:
	// (1, 0) #ff8000
	// (1.5, 0) #ff8000
	// (1.75, 0) #ff8000
	// (1.875, 0) #ff8000
}

func ExampleIFS_Points() {
	// Barnsley's fern.
	s, err := ifs.New([][]float64{
		{0, 0, 0, 0.16, 0, 0, 0.01},
		{0.85, 0.04, -0.04, 0.85, 0, 1.6, 0.85},
		{0.2, -0.26, 0.23, 0.22, 0, 1.6, 0.07},
		{-0.15, 0.28, 0.26, 0.24, 0, 0.44, 0.07},
	}, nil, ifs.WithRand(ifs.NewRand(1)))
	if err != nil {
		panic(err)
	}

	bounds := ifs.Rect{}
	n := 0
	for pt := range s.Points() {
		// Skip the transient near the starting point.
		if n > 20 {
			bounds = bounds.UnionPoint(pt)
		}
		n++
		if n == 100_000 {
			break
		}
	}
	fmt.Println(bounds.Width() < 6, bounds.Height() < 10.1)
	// Output:
	// true true
}

func ExampleNew_inconsistent() {
	_, err := ifs.New([][]float64{
		{0.5, 0, 0, 0.5, 0, 0},
		{0.5, 0, 0, 0.5, 0.5, 0, 0.5},
	}, nil)
	fmt.Println(err)
	// Output:
	// ifs: map 1 has 7 coefficients, but map 0 has 6; weights must be given for all maps or none
}
