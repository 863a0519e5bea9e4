// Package depth loads per-frame depth grids and computes region statistics.
// Grids come from .npy files sitting next to the RGB frames, one float value
// per pixel in metres. Sensor dropouts appear as zeros, NaNs or infinities
// and are excluded from every statistic.
package depth

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is one frame's depth map, row major.
type Grid struct {
	W, H   int
	Values []float32
}

// At returns the depth at pixel (x, y). Out-of-range coordinates return 0,
// which every consumer already treats as invalid.
func (g *Grid) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.Values[y*g.W+x]
}

// Load reads a 2-D float32 or float64 array from a .npy file.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open depth grid: %w", err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read npy header %s: %w", path, err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 2 {
		return nil, fmt.Errorf("depth grid %s: expected 2 dimensions, got %d", path, len(shape))
	}
	h, w := shape[0], shape[1]

	g := &Grid{W: w, H: h}
	switch r.Header.Descr.Type {
	case "<f4", "f4", ">f4":
		g.Values = make([]float32, w*h)
		if err := r.Read(&g.Values); err != nil {
			return nil, fmt.Errorf("read depth grid %s: %w", path, err)
		}
	case "<f8", "f8", ">f8":
		v64 := make([]float64, w*h)
		if err := r.Read(&v64); err != nil {
			return nil, fmt.Errorf("read depth grid %s: %w", path, err)
		}
		g.Values = make([]float32, len(v64))
		for i, v := range v64 {
			g.Values[i] = float32(v)
		}
	default:
		return nil, fmt.Errorf("depth grid %s: unsupported dtype %q", path, r.Header.Descr.Type)
	}
	return g, nil
}

// Band is the valid depth range in metres, inclusive on both ends.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Stats summarizes the valid depth values inside a region.
type Stats struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Count int
}

// Extract computes statistics over the pixels of roi (image coordinates),
// considering only finite, strictly positive values inside the band. The
// second return is false when no pixel qualifies.
//
// Std is the population standard deviation: a constant region reports 0.
func Extract(g *Grid, roi image.Rectangle, band Band) (Stats, bool) {
	if g == nil {
		return Stats{}, false
	}
	roi = roi.Intersect(image.Rect(0, 0, g.W, g.H))
	if roi.Empty() {
		return Stats{}, false
	}

	valid := make([]float64, 0, roi.Dx()*roi.Dy())
	for y := roi.Min.Y; y < roi.Max.Y; y++ {
		row := g.Values[y*g.W : (y+1)*g.W]
		for x := roi.Min.X; x < roi.Max.X; x++ {
			v := float64(row[x])
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !band.Contains(v) {
				continue
			}
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return Stats{}, false
	}
	return Stats{
		Mean:  stat.Mean(valid, nil),
		Std:   stat.PopStdDev(valid, nil),
		Min:   floats.Min(valid),
		Max:   floats.Max(valid),
		Count: len(valid),
	}, true
}

// Colorize renders the grid as a false-color image: near is warm, far is
// cool, and invalid or out-of-band pixels are black.
func Colorize(g *Grid, band Band) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	span := band.Max - band.Min
	if span <= 0 {
		span = 1
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := float64(g.At(x, y))
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) || !band.Contains(v) {
				img.SetRGBA(x, y, color.RGBA{A: 0xff})
				continue
			}
			// Invert so the nearest depth gets the hottest color.
			t := 1 - (v-band.Min)/span
			img.SetRGBA(x, y, jet(t))
		}
	}
	return img
}

// jet maps t in [0, 1] onto the blue-cyan-yellow-red ramp.
func jet(t float64) color.RGBA {
	r := clamp01(1.5 - math.Abs(4*t-3))
	g := clamp01(1.5 - math.Abs(4*t-2))
	b := clamp01(1.5 - math.Abs(4*t-1))
	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 0xff,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
