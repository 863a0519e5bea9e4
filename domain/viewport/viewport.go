// Package viewport maps between the coordinate system of a full-resolution
// source image and a fixed-size display area, under a zoom/pan crop.
//
// The image is always scaled to fill the display while preserving aspect
// ratio. At zoom 1 the whole image is shown; at zoom z > 1 a crop window of
// size (W/z, H/z) centred on the focus point is shown instead. The focus is
// clamped on every mutation so the crop never leaves the image.
package viewport

import (
	"image"
	"math"
)

// Zoom limits. Zoom 1 is the canonical whole-image state.
const (
	MinZoom = 1.0
	MaxZoom = 10.0
)

// State is the mutable zoom/pan state for one display surface.
// It performs no I/O; callers own redraws.
type State struct {
	zoom   float64
	focusX float64 // crop centre, image coordinates
	focusY float64
	imageW int
	imageH int
	viewW  int
	viewH  int
}

// New returns a State showing the whole image (zoom 1, centred focus).
func New(imageW, imageH, viewW, viewH int) *State {
	s := &State{imageW: imageW, imageH: imageH, viewW: viewW, viewH: viewH}
	s.Reset()
	return s
}

// Reset returns to the canonical whole-image state.
func (s *State) Reset() {
	s.zoom = MinZoom
	s.focusX = float64(s.imageW) / 2
	s.focusY = float64(s.imageH) / 2
}

// Zoom reports the current zoom factor.
func (s *State) Zoom() float64 { return s.zoom }

// Focus reports the crop centre in image coordinates.
func (s *State) Focus() image.Point {
	return image.Pt(int(s.focusX), int(s.focusY))
}

// ImageSize reports the source image dimensions.
func (s *State) ImageSize() (int, int) { return s.imageW, s.imageH }

// ViewSize reports the display dimensions.
func (s *State) ViewSize() (int, int) { return s.viewW, s.viewH }

// SetImageSize updates the source dimensions. A size change re-clamps the
// focus; a resolution switch (new sequence) should call Reset instead.
func (s *State) SetImageSize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	if w != s.imageW || h != s.imageH {
		s.imageW, s.imageH = w, h
		s.clampFocus()
	}
}

// SetViewSize updates the display dimensions.
func (s *State) SetViewSize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	s.viewW, s.viewH = w, h
}

// Crop returns the image-space window currently visible.
// At zoom 1 this is the full image.
func (s *State) Crop() image.Rectangle {
	x, y, w, h := s.crop()
	return image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h))
}

// crop computes the visible window in image space as floats.
func (s *State) crop() (x, y, w, h float64) {
	iw, ih := float64(s.imageW), float64(s.imageH)
	w = iw / s.zoom
	h = ih / s.zoom
	w = math.Max(1, math.Min(w, iw))
	h = math.Max(1, math.Min(h, ih))
	x = clampf(s.focusX-w/2, 0, iw-w)
	y = clampf(s.focusY-h/2, 0, ih-h)
	return
}

// display computes the area inside the view covered by the (aspect-preserving)
// scaled image: offsets plus drawn size. The crop always has the image's
// aspect ratio, so the fit is the same at every zoom.
func (s *State) display() (offX, offY, dispW, dispH float64) {
	vw, vh := float64(s.viewW), float64(s.viewH)
	aspect := float64(s.imageW) / float64(s.imageH)
	if vw/vh > aspect {
		dispH = vh
		dispW = vh * aspect
		offX = (vw - dispW) / 2
	} else {
		dispW = vw
		dispH = vw / aspect
		offY = (vh - dispH) / 2
	}
	return
}

// DisplayArea returns the sub-rectangle of the view the image is drawn into.
func (s *State) DisplayArea() image.Rectangle {
	ox, oy, dw, dh := s.display()
	return image.Rect(int(ox), int(oy), int(ox+dw), int(oy+dh))
}

// ImageToDisplay projects an image-space rectangle onto the view. The second
// return is false when the rectangle does not intersect the current crop at
// all; callers must treat that as "not visible".
func (s *State) ImageToDisplay(r image.Rectangle) (image.Rectangle, bool) {
	if s.imageW < 1 || s.imageH < 1 || r.Empty() {
		return image.Rectangle{}, false
	}
	cx, cy, cw, ch := s.crop()
	x1, y1 := float64(r.Min.X), float64(r.Min.Y)
	x2, y2 := float64(r.Max.X), float64(r.Max.Y)
	if x2 < cx || x1 > cx+cw || y2 < cy || y1 > cy+ch {
		return image.Rectangle{}, false
	}
	// Express relative to the crop and clip to it.
	rx1 := clampf(x1-cx, 0, cw)
	ry1 := clampf(y1-cy, 0, ch)
	rx2 := clampf(x2-cx, 0, cw)
	ry2 := clampf(y2-cy, 0, ch)
	offX, offY, dispW, _ := s.display()
	scale := dispW / cw
	out := image.Rect(
		int(rx1*scale+offX),
		int(ry1*scale+offY),
		int(rx2*scale+offX),
		int(ry2*scale+offY),
	)
	if out.Empty() {
		return image.Rectangle{}, false
	}
	return out, true
}

// DisplayToImage maps a display-space rectangle back onto the image, clamped
// to image bounds. The result is empty when the input collapses to zero area.
func (s *State) DisplayToImage(r image.Rectangle) image.Rectangle {
	x1, y1 := s.imagePoint(float64(r.Min.X), float64(r.Min.Y))
	x2, y2 := s.imagePoint(float64(r.Max.X), float64(r.Max.Y))
	iw, ih := float64(s.imageW), float64(s.imageH)
	x1 = clampf(x1, 0, iw)
	y1 = clampf(y1, 0, ih)
	x2 = clampf(x2, 0, iw)
	y2 = clampf(y2, 0, ih)
	return image.Rect(int(x1), int(y1), int(x2), int(y2))
}

// ImagePointAt maps a display-space point to image coordinates (unclamped).
func (s *State) ImagePointAt(p image.Point) (float64, float64) {
	return s.imagePoint(float64(p.X), float64(p.Y))
}

func (s *State) imagePoint(dx, dy float64) (float64, float64) {
	cx, cy, cw, _ := s.crop()
	offX, offY, dispW, _ := s.display()
	scale := cw / dispW
	return cx + (dx-offX)*scale, cy + (dy-offY)*scale
}

// ZoomAt multiplies the zoom by factor, keeping the image point under the
// given display cursor fixed. When the clamped focus hits an image edge the
// anchored point may shift; that is accepted edge behaviour. Reaching zoom 1
// resets focus to the image centre. Reports whether the state changed.
func (s *State) ZoomAt(factor float64, cursor image.Point) bool {
	newZoom := clampf(s.zoom*factor, MinZoom, MaxZoom)
	if newZoom == s.zoom {
		return false
	}
	if newZoom == MinZoom {
		s.Reset()
		return true
	}
	// Image point under the cursor before the change.
	imgX, imgY := s.ImagePointAt(cursor)

	offX, offY, dispW, dispH := s.display()
	normX := (float64(cursor.X) - offX) / dispW
	normY := (float64(cursor.Y) - offY) / dispH

	iw, ih := float64(s.imageW), float64(s.imageH)
	newCropW := iw / newZoom
	newCropH := ih / newZoom

	// Solve the crop origin so the anchored point re-projects onto the cursor,
	// then recover the focus from the origin.
	s.zoom = newZoom
	s.focusX = (imgX - normX*newCropW) + newCropW/2
	s.focusY = (imgY - normY*newCropH) + newCropH/2
	s.clampFocus()
	return true
}

// Pan shifts the crop by a display-pixel delta, following the pointer. Only
// meaningful while zoomed in; at zoom 1 it is a no-op.
func (s *State) Pan(dx, dy int) bool {
	if s.zoom <= MinZoom {
		return false
	}
	_, _, cw, ch := s.crop()
	_, _, dispW, dispH := s.display()
	s.focusX -= float64(dx) * cw / dispW
	s.focusY -= float64(dy) * ch / dispH
	s.clampFocus()
	return true
}

func (s *State) clampFocus() {
	iw, ih := float64(s.imageW), float64(s.imageH)
	cw := iw / s.zoom
	ch := ih / s.zoom
	s.focusX = clampf(s.focusX, cw/2, iw-cw/2)
	s.focusY = clampf(s.focusY, ch/2, ih-ch/2)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
