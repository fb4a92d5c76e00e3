package render

import (
	"honnef.co/go/ifs"
)

// Viewport maps points of an IFS to pixel coordinates by scaling them
// uniformly and then offsetting them.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	// FlipY makes y grow upwards, as is usual in mathematics.
	FlipY bool
}

// DefaultViewport returns a viewport that maps the origin to the center of the
// largest square fitting into a width×height raster and scales one unit to
// scale times the side length of that square.
func DefaultViewport(width, height int, scale float64) Viewport {
	size := min(width, height)
	off := float64(size >> 1)
	return Viewport{
		Scale:   float64(size) * scale,
		OffsetX: off,
		OffsetY: off,
	}
}

// FitViewport returns a viewport that centers bounds in a width×height raster
// and scales it as large as possible. The bounds are first grown by margin
// times their width and height on each side. The result has FlipY set.
func FitViewport(bounds ifs.Rect, width, height int, margin float64) Viewport {
	bounds = bounds.Abs()
	bounds = bounds.Inflate(margin*bounds.Width(), margin*bounds.Height())

	bw, bh := bounds.Width(), bounds.Height()
	var scale float64
	switch {
	case bw > 0 && bh > 0:
		scale = min(float64(width)/bw, float64(height)/bh)
	case bw > 0:
		scale = float64(width) / bw
	case bh > 0:
		scale = float64(height) / bh
	default:
		scale = 1
	}

	c := bounds.Center()
	return Viewport{
		Scale:   scale,
		OffsetX: float64(width)/2 - scale*c.X,
		OffsetY: float64(height)/2 + scale*c.Y,
		FlipY:   true,
	}
}

// Pixel returns the pixel that pt falls into. Coordinates are truncated
// towards zero.
func (vp Viewport) Pixel(pt ifs.Point) (x, y int) {
	x = int(vp.OffsetX + vp.Scale*pt.X)
	if vp.FlipY {
		y = int(vp.OffsetY - vp.Scale*pt.Y)
	} else {
		y = int(vp.OffsetY + vp.Scale*pt.Y)
	}
	return x, y
}

// Scaled returns the viewport for a raster that is f times as large.
func (vp Viewport) Scaled(f float64) Viewport {
	return Viewport{
		Scale:   vp.Scale * f,
		OffsetX: vp.OffsetX * f,
		OffsetY: vp.OffsetY * f,
		FlipY:   vp.FlipY,
	}
}

// Bounds estimates the extent of the attractor by discarding skip points and
// then taking the bounding box of the next n finite points. It advances s.
func Bounds(s *ifs.IFS, n, skip int) ifs.Rect {
	for range skip {
		s.Iterate()
	}
	var r ifs.Rect
	first := true
	for range n {
		pt := s.Iterate()
		if !pt.IsFinite() {
			continue
		}
		if first {
			r = ifs.NewRectFromPoints(pt, pt)
			first = false
		} else {
			r = r.UnionPoint(pt)
		}
	}
	return r
}
