package viewport

import (
	"image"
	"math"
	"testing"
)

func TestNewShowsWholeImage(t *testing.T) {
	s := New(1280, 720, 960, 540)
	if got := s.Zoom(); got != MinZoom {
		t.Fatalf("expected zoom %v, got %v", MinZoom, got)
	}
	want := image.Rect(0, 0, 1280, 720)
	if got := s.Crop(); got != want {
		t.Fatalf("expected crop %v, got %v", want, got)
	}
}

func TestDisplayAreaLetterboxes(t *testing.T) {
	// Image wider than view: full width used, vertical bars.
	s := New(1280, 720, 640, 640)
	area := s.DisplayArea()
	if area.Dx() != 640 {
		t.Fatalf("expected full display width, got %v", area)
	}
	if area.Min.Y == 0 || area.Min.Y != 640-area.Max.Y {
		t.Fatalf("expected centered vertical offsets, got %v", area)
	}
}

func TestZoomAtBounds(t *testing.T) {
	s := New(1280, 720, 960, 540)
	center := image.Pt(480, 270)

	for i := 0; i < 100; i++ {
		s.ZoomAt(1.2, center)
	}
	if got := s.Zoom(); got != MaxZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MaxZoom, got)
	}

	for i := 0; i < 100; i++ {
		s.ZoomAt(1/1.2, center)
	}
	if got := s.Zoom(); got != MinZoom {
		t.Fatalf("expected zoom clamped to %v, got %v", MinZoom, got)
	}
	if got := s.Crop(); got != image.Rect(0, 0, 1280, 720) {
		t.Fatalf("expected full crop after zoom out, got %v", got)
	}
}

func TestZoomAtNoChangeReportsFalse(t *testing.T) {
	s := New(1280, 720, 960, 540)
	if s.ZoomAt(0.5, image.Pt(480, 270)) {
		t.Fatal("expected no state change when already at minimum zoom")
	}
}

func TestZoomAtKeepsCursorPointFixed(t *testing.T) {
	s := New(1280, 720, 960, 540)
	cursor := image.Pt(600, 200)

	beforeX, beforeY := s.ImagePointAt(cursor)
	if !s.ZoomAt(2.0, cursor) {
		t.Fatal("expected zoom to apply")
	}
	afterX, afterY := s.ImagePointAt(cursor)

	if math.Abs(afterX-beforeX) > 1 || math.Abs(afterY-beforeY) > 1 {
		t.Fatalf("anchored point moved: before (%v,%v), after (%v,%v)",
			beforeX, beforeY, afterX, afterY)
	}
}

func TestZoomAtEdgeClampsCrop(t *testing.T) {
	s := New(1280, 720, 960, 540)
	// Zoom into the extreme corner; the crop must stay inside the image.
	s.ZoomAt(4.0, image.Pt(0, 0))
	crop := s.Crop()
	if crop.Min.X < 0 || crop.Min.Y < 0 {
		t.Fatalf("crop escaped image bounds: %v", crop)
	}
	if crop.Max.X > 1280 || crop.Max.Y > 720 {
		t.Fatalf("crop escaped image bounds: %v", crop)
	}
}

func TestRoundTrip(t *testing.T) {
	s := New(1280, 720, 960, 540)
	s.ZoomAt(3.0, image.Pt(700, 300))

	orig := image.Rect(700, 300, 820, 380)
	disp, ok := s.ImageToDisplay(orig)
	if !ok {
		t.Fatalf("rectangle %v should be visible in crop %v", orig, s.Crop())
	}
	back := s.DisplayToImage(disp)

	// Integer truncation in both directions allows a small drift.
	const tol = 2
	if abs(back.Min.X-orig.Min.X) > tol || abs(back.Min.Y-orig.Min.Y) > tol ||
		abs(back.Max.X-orig.Max.X) > tol || abs(back.Max.Y-orig.Max.Y) > tol {
		t.Fatalf("round trip drifted: %v -> %v -> %v", orig, disp, back)
	}
}

func TestImageToDisplayOutsideCrop(t *testing.T) {
	s := New(1280, 720, 960, 540)
	for i := 0; i < 10; i++ {
		s.ZoomAt(1.2, image.Pt(900, 500)) // push crop toward bottom right
	}
	crop := s.Crop()
	outside := image.Rect(0, 0, crop.Min.X-10, crop.Min.Y-10)
	if outside.Empty() {
		t.Skipf("crop %v leaves no room above it", crop)
	}
	if _, ok := s.ImageToDisplay(outside); ok {
		t.Fatalf("rectangle %v outside crop %v reported visible", outside, crop)
	}
}

func TestPanMovesCropAndClamps(t *testing.T) {
	s := New(1280, 720, 960, 540)
	if s.Pan(50, 50) {
		t.Fatal("pan must be a no-op at zoom 1")
	}

	s.ZoomAt(4.0, image.Pt(480, 270))
	before := s.Crop()
	if !s.Pan(-40, 0) {
		t.Fatal("expected pan to apply while zoomed")
	}
	after := s.Crop()
	if after.Min.X <= before.Min.X {
		t.Fatalf("dragging left should move the crop right: %v -> %v", before, after)
	}

	// Drag far past the edge; the crop must clamp.
	for i := 0; i < 200; i++ {
		s.Pan(-100, -100)
	}
	crop := s.Crop()
	if crop.Max.X != 1280 || crop.Max.Y != 720 {
		t.Fatalf("expected crop pinned to bottom-right edge, got %v", crop)
	}
}

func TestDisplayToImageClampsToBounds(t *testing.T) {
	s := New(1280, 720, 960, 540)
	r := s.DisplayToImage(image.Rect(-500, -500, 5000, 5000))
	if !r.In(image.Rect(0, 0, 1280, 720)) {
		t.Fatalf("expected result inside image bounds, got %v", r)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
