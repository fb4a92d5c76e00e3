// Package render draws the points produced by an [ifs.IFS] into an image.
//
// Each point is plotted as a single pixel in the color of the map that
// produced it. Later points overwrite earlier ones; there is no blending.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"honnef.co/go/ifs"
)

// Options configures [Render].
type Options struct {
	// Points is the number of points to plot.
	Points int
	// BurnIn is the number of points to discard before plotting.
	BurnIn int
	// Viewport maps points to pixels of the final image.
	Viewport Viewport
	// Background fills the image before plotting. It defaults to black.
	Background color.Color
	// Supersample renders into a raster Supersample times as large in each
	// dimension and scales the result down. Values less than 2 disable
	// supersampling.
	Supersample int
}

// Stats describes what happened to the points during rendering.
type Stats struct {
	Plotted   int
	OffCanvas int
	NonFinite int
}

// checkInterval is the number of points plotted between checks of the context.
const checkInterval = 1 << 16

// Render runs s and plots its points into a new width×height image.
func Render(ctx context.Context, s *ifs.IFS, width, height int, opts Options) (*image.RGBA, Stats, error) {
	var stats Stats
	if width <= 0 || height <= 0 {
		return nil, stats, fmt.Errorf("render: invalid size %dx%d", width, height)
	}
	ss := max(1, opts.Supersample)
	bg := opts.Background
	if bg == nil {
		bg = color.Black
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width*ss, height*ss))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	vp := opts.Viewport.Scaled(float64(ss))
	bounds := canvas.Bounds()

	log := ifs.Logger()
	log.Debug("render: burn-in", "points", opts.BurnIn)
	for range opts.BurnIn {
		s.Iterate()
	}

	log.Debug("render: plotting", "points", opts.Points, "width", width, "height", height, "supersample", ss)
	if opts.Points > 0 {
		i := 0
		for pt, c := range s.Points() {
			if i%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					return nil, stats, err
				}
			}
			i++

			x, y := vp.Pixel(pt)
			switch {
			case !pt.IsFinite():
				stats.NonFinite++
			case !(image.Point{X: x, Y: y}).In(bounds):
				stats.OffCanvas++
			default:
				r, g, b := c.RGB()
				canvas.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
				stats.Plotted++
			}

			if i == opts.Points {
				break
			}
		}
	}
	if stats.NonFinite > 0 {
		log.Warn("render: skipped non-finite points", "count", stats.NonFinite)
	}
	log.Debug("render: done", "plotted", stats.Plotted, "off_canvas", stats.OffCanvas)

	if ss == 1 {
		return canvas, stats, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return dst, stats, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG, creating parent directories as needed.
func SavePNG(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return WritePNG(f, img)
}
