package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Compose renders the crop window of a source frame into a viewW x viewH
// canvas. The crop is resized into area (the letterboxed display rectangle);
// the rest of the canvas stays black.
func Compose(src image.Image, crop image.Rectangle, viewW, viewH int, area image.Rectangle) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, viewW, viewH))
	if src == nil || crop.Empty() || area.Empty() {
		return canvas
	}
	cropped := imaging.Crop(src, crop)
	scaled := imaging.Resize(cropped, area.Dx(), area.Dy(), imaging.Linear)
	draw.Draw(canvas, area, scaled, image.Point{}, draw.Src)
	return canvas
}

// DrawRectOutline strokes r onto img with the given color and thickness.
// The rectangle is clipped to the image.
func DrawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	if img == nil || r.Empty() {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness)
	bottom := image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y)
	right := image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, edge.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
}

// DrawHandles marks the eight resize grips of r: four corners and four edge
// midpoints, each a filled square of the given size.
func DrawHandles(img *image.RGBA, r image.Rectangle, c color.RGBA, size int) {
	if img == nil || r.Empty() {
		return
	}
	if size < 2 {
		size = 2
	}
	half := size / 2
	midX := (r.Min.X + r.Max.X) / 2
	midY := (r.Min.Y + r.Max.Y) / 2
	points := []image.Point{
		r.Min,
		{r.Max.X, r.Min.Y},
		{r.Min.X, r.Max.Y},
		r.Max,
		{r.Min.X, midY},
		{r.Max.X, midY},
		{midX, r.Min.Y},
		{midX, r.Max.Y},
	}
	for _, p := range points {
		grip := image.Rect(p.X-half, p.Y-half, p.X+half, p.Y+half)
		draw.Draw(img, grip.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
}
