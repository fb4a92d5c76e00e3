// Package ifs implements the chaos game for iterated function systems (IFS).
//
// An iterated function system is a finite set of contraction mappings of the
// plane. A contraction mapping f has the property that there is a 0 ≤ k < 1
// such that
//
//	d(f(x), f(y)) ≤ k·d(x, y)
//
// for all points x and y. Every such system has a unique attractor, a set that
// is often a fractal, such as the Sierpiński triangle or Barnsley's fern.
//
// # Maps
//
// The maps of a system are affine and are conventionally written as rows of
// coefficients
//
//	a b c d e f [p]
//
// sending the point (x, y) to (a·x + b·y + e, c·x + d·y + f). The optional
// seventh entry p is the map's weight. If weights are given for all maps, each
// map is chosen with probability proportional to its weight; if they are given
// for none, maps are chosen uniformly. Mixing both forms is an error.
//
// See [Affine] and [Map].
//
// # The chaos game
//
// [IFS] starts at a point (by default the origin) and repeatedly applies a
// randomly chosen map to it. The resulting points approach the attractor
// regardless of the starting point. Each map has a [Color], so callers can
// tell which branch of the attractor a point belongs to. [IFS.Points] exposes
// the game as an infinite iterator of points and colors.
//
// Randomness comes from a [Rand], which can be replaced with [WithRand] to
// make the game reproducible.
//
// This package does not rasterize or parse anything. See the ifsfile package
// for reading systems from files and the render package for turning points
// into images.
//
// # Literature
//
//   - [Iterated function system]
//   - [Contraction mapping]
//   - Michael Barnsley, Fractals Everywhere
//
// [Iterated function system]: https://en.wikipedia.org/wiki/Iterated_function_system
// [Contraction mapping]: https://en.wikipedia.org/wiki/Contraction_mapping
package ifs
