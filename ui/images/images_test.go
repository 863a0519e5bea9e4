package images

import (
	"image"
	"image/color"
	"testing"
)

func TestCropAOI_ClampsToFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	cut, rect, err := CropAOI(frame, image.Rect(80, 80, 150, 150))
	if err != nil || cut == nil {
		t.Fatalf("expected cut, got err=%v", err)
	}
	if rect.Max.X > 100 || rect.Max.Y > 100 {
		t.Fatalf("rect exceeds frame bounds: %v", rect)
	}
	if cut.Bounds().Dx() != rect.Dx() || cut.Bounds().Dy() != rect.Dy() {
		t.Fatalf("cut size %v does not match rect %v", cut.Bounds(), rect)
	}
}

func TestCropAOI_MinSize(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, rect, err := CropAOI(frame, image.Rect(4, 4, 4, 4))
	if err != nil {
		t.Fatalf("crop error: %v", err)
	}
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1 got %dx%d", rect.Dx(), rect.Dy())
	}
	if rect.Min != image.Pt(4, 4) {
		t.Fatalf("padded region must keep its position, got %v", rect)
	}
}

func TestCropAOI_OutsideFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if _, _, err := CropAOI(frame, image.Rect(50, 50, 60, 60)); err == nil {
		t.Fatal("expected error for a region fully outside the frame")
	}
	if _, _, err := CropAOI(nil, image.Rect(0, 0, 5, 5)); err == nil {
		t.Fatal("expected error for a nil frame")
	}
}

func TestComposeLetterboxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	area := image.Rect(0, 50, 200, 150) // horizontal bars above and below
	out := Compose(src, src.Bounds(), 200, 200, area)

	if got := out.RGBAAt(100, 10); got.R != 0 {
		t.Fatalf("letterbox bar must stay black, got %v", got)
	}
	if got := out.RGBAAt(100, 100); got.R == 0 {
		t.Fatalf("display area must carry the frame, got %v", got)
	}
}

func TestComposeNilSource(t *testing.T) {
	out := Compose(nil, image.Rect(0, 0, 10, 10), 50, 50, image.Rect(0, 0, 50, 50))
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 50 {
		t.Fatalf("expected blank canvas, got %v", out.Bounds())
	}
}

func TestDrawRectOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	DrawRectOutline(img, image.Rect(10, 10, 40, 40), color.RGBA{G: 255, A: 255}, 2)

	if got := img.RGBAAt(20, 10); got.G != 255 {
		t.Fatalf("top edge not drawn: %v", got)
	}
	if got := img.RGBAAt(20, 25); got.G != 0 {
		t.Fatalf("interior must stay untouched: %v", got)
	}
}

func TestScaleToFitKeepsSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 30))
	if out := ScaleToFit(src, 100, 100); out != src {
		t.Fatal("an image that already fits must be returned unchanged")
	}
	out := ScaleToFit(image.NewRGBA(image.Rect(0, 0, 400, 200)), 100, 100)
	b := out.Bounds()
	if b.Dx() > 100 || b.Dy() > 100 {
		t.Fatalf("scaled image exceeds limit: %v", b)
	}
}
