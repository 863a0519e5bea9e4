package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// CropAOI cuts the annotated region out of a frame for the thumbnail panel.
// The region is clamped to frame bounds and guaranteed at least 1x1.
// Returns the cut image and the rectangle actually used.
func CropAOI(frame image.Image, roi image.Rectangle) (image.Image, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	roi = roi.Canon()
	// Pad before intersecting. Intersect collapses a zero-size region to the
	// zero rectangle, losing its position.
	if roi.Dx() < 1 {
		roi.Max.X = roi.Min.X + 1
	}
	if roi.Dy() < 1 {
		roi.Max.Y = roi.Min.Y + 1
	}
	roi = roi.Intersect(b)
	if roi.Empty() {
		return nil, image.Rectangle{}, errors.New("region outside frame")
	}
	return imaging.Crop(frame, roi), roi, nil
}
