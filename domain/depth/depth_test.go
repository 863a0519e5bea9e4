package depth

import (
	"image"
	"math"
	"testing"
)

func gridOf(w, h int, fill float32) *Grid {
	g := &Grid{W: w, H: h, Values: make([]float32, w*h)}
	for i := range g.Values {
		g.Values[i] = fill
	}
	return g
}

func TestExtractConstantRegion(t *testing.T) {
	g := gridOf(10, 10, 2.5)
	s, ok := Extract(g, image.Rect(2, 2, 6, 6), Band{Min: 1, Max: 20})
	if !ok {
		t.Fatal("expected valid statistics")
	}
	if s.Count != 16 {
		t.Fatalf("expected 16 samples, got %d", s.Count)
	}
	if s.Mean != 2.5 || s.Min != 2.5 || s.Max != 2.5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Std != 0 {
		t.Fatalf("constant region must have zero deviation, got %v", s.Std)
	}
}

func TestExtractSkipsInvalidValues(t *testing.T) {
	g := gridOf(4, 1, 0)
	g.Values[0] = 3
	g.Values[1] = 0 // dropout
	g.Values[2] = float32(math.NaN())
	g.Values[3] = 5

	s, ok := Extract(g, image.Rect(0, 0, 4, 1), Band{Min: 1, Max: 20})
	if !ok {
		t.Fatal("expected valid statistics")
	}
	if s.Count != 2 {
		t.Fatalf("expected 2 valid samples, got %d", s.Count)
	}
	if s.Mean != 4 || s.Min != 3 || s.Max != 5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestExtractBandIsInclusive(t *testing.T) {
	g := gridOf(3, 1, 0)
	g.Values[0] = 1.0
	g.Values[1] = 20.0
	g.Values[2] = 20.5

	s, ok := Extract(g, image.Rect(0, 0, 3, 1), Band{Min: 1, Max: 20})
	if !ok {
		t.Fatal("expected valid statistics")
	}
	if s.Count != 2 || s.Min != 1 || s.Max != 20 {
		t.Fatalf("band must include its endpoints: %+v", s)
	}
}

func TestExtractNoValidValues(t *testing.T) {
	g := gridOf(5, 5, 0.5) // everything below the band
	if _, ok := Extract(g, image.Rect(0, 0, 5, 5), Band{Min: 1, Max: 20}); ok {
		t.Fatal("expected no statistics when nothing qualifies")
	}
	if _, ok := Extract(nil, image.Rect(0, 0, 5, 5), Band{Min: 1, Max: 20}); ok {
		t.Fatal("expected no statistics for a missing grid")
	}
}

func TestExtractClampsRegion(t *testing.T) {
	g := gridOf(8, 8, 3)
	s, ok := Extract(g, image.Rect(-10, -10, 100, 100), Band{Min: 1, Max: 20})
	if !ok || s.Count != 64 {
		t.Fatalf("expected region clamped to the grid, got %+v %v", s, ok)
	}
}

func TestAtOutOfRange(t *testing.T) {
	g := gridOf(4, 4, 7)
	if v := g.At(-1, 0); v != 0 {
		t.Fatalf("expected 0 outside the grid, got %v", v)
	}
	if v := g.At(3, 3); v != 7 {
		t.Fatalf("expected stored value, got %v", v)
	}
}

func TestColorizeInvalidPixelsAreBlack(t *testing.T) {
	g := gridOf(2, 1, 0)
	g.Values[1] = 5
	img := Colorize(g, Band{Min: 1, Max: 20})

	r, gc, b, _ := img.At(0, 0).RGBA()
	if r != 0 || gc != 0 || b != 0 {
		t.Fatalf("dropout pixel must be black, got (%d,%d,%d)", r, gc, b)
	}
	r, gc, b, _ = img.At(1, 0).RGBA()
	if r == 0 && gc == 0 && b == 0 {
		t.Fatal("valid pixel must be colored")
	}
}

func TestColorizeNearIsWarmerThanFar(t *testing.T) {
	g := gridOf(2, 1, 0)
	g.Values[0] = 1.5  // near
	g.Values[1] = 19.5 // far
	img := Colorize(g, Band{Min: 1, Max: 20})

	nearR, _, _, _ := img.At(0, 0).RGBA()
	farR, _, _, _ := img.At(1, 0).RGBA()
	if nearR <= farR {
		t.Fatalf("near pixel must carry more red than far: %d vs %d", nearR, farR)
	}
}
