// Package selection implements the interactive rectangle editor driven by
// pointer events in display space. The editor is a small state machine:
// pressing on a resize handle starts a resize, pressing inside the rectangle
// starts a move, and pressing anywhere else starts drawing a fresh rectangle.
//
// Releases below 2x2 pixels are treated as accidental and revert to the
// rectangle held before the gesture. A 1-pixel sliver cannot seed a tracker
// or bound a depth region, so it is never committed.
package selection

import (
	"image"
	"log/slog"
)

// Handle identifies the grab point of a resize gesture.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleLeft
	HandleRight
	HandleTop
	HandleBottom
)

func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Mode is the editor's current gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeCreating:
		return "creating"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Editor tracks one rectangle in display coordinates and mutates it from
// pointer events. Bounds confine the rectangle to the drawable area.
type Editor struct {
	mode   Mode
	handle Handle

	rect    image.Rectangle
	hasRect bool

	// Snapshot taken at press time so a degenerate gesture can revert.
	prior    image.Rectangle
	hasPrior bool

	anchor    image.Point
	bounds    image.Rectangle
	hitRadius int
	logger    *slog.Logger
}

// NewEditor returns an idle editor confined to bounds. hitRadius is the
// Chebyshev distance within which a press grabs a handle.
func NewEditor(bounds image.Rectangle, hitRadius int, logger *slog.Logger) *Editor {
	if hitRadius < 1 {
		hitRadius = 1
	}
	return &Editor{bounds: bounds, hitRadius: hitRadius, logger: logger}
}

// SetBounds updates the drawable area. The current rectangle is re-clamped.
func (e *Editor) SetBounds(b image.Rectangle) {
	e.bounds = b
	if e.hasRect {
		e.rect = clampTo(e.rect, b)
		e.hasRect = !e.rect.Empty()
	}
}

// Mode reports the active gesture.
func (e *Editor) Mode() Mode { return e.mode }

// Rect reports the current rectangle, if any.
func (e *Editor) Rect() (image.Rectangle, bool) { return e.rect, e.hasRect }

// SetRect replaces the rectangle from outside the pointer flow, e.g. when a
// tracker reprojects onto a new frame. Any in-flight gesture is dropped.
func (e *Editor) SetRect(r image.Rectangle) {
	e.mode = ModeIdle
	e.handle = HandleNone
	e.rect = clampTo(r.Canon(), e.bounds)
	e.hasRect = !e.rect.Empty()
}

// Clear discards the rectangle and any gesture.
func (e *Editor) Clear() {
	e.mode = ModeIdle
	e.handle = HandleNone
	e.hasRect = false
	e.hasPrior = false
}

// PointerDown starts a gesture at p. Handle hits win over body hits, and
// corner handles win over edge handles.
func (e *Editor) PointerDown(p image.Point) {
	e.prior, e.hasPrior = e.rect, e.hasRect

	if e.hasRect {
		if h := e.hitHandle(p); h != HandleNone {
			e.mode = ModeResizing
			e.handle = h
			e.logger.Debug("resize gesture", slog.String("handle", h.String()))
			return
		}
		if p.In(e.rect) {
			e.mode = ModeMoving
			e.anchor = p
			return
		}
	}
	e.mode = ModeCreating
	e.anchor = p
	e.rect = image.Rectangle{Min: p, Max: p}
	e.hasRect = true
}

// PointerMove advances the active gesture to p. Idle moves are ignored.
func (e *Editor) PointerMove(p image.Point) {
	switch e.mode {
	case ModeCreating:
		e.rect = clampTo(span(e.anchor, p), e.bounds)
	case ModeMoving:
		delta := p.Sub(e.anchor)
		moved := e.rect.Add(delta)
		moved = keepInside(moved, e.bounds)
		e.anchor = e.anchor.Add(moved.Min.Sub(e.rect.Min))
		e.rect = moved
	case ModeResizing:
		e.resizeTo(p)
	}
}

// PointerUp ends the gesture. It returns the committed rectangle when the
// gesture produced a usable one; a degenerate result reverts to the rectangle
// that existed before the press.
func (e *Editor) PointerUp(p image.Point) (image.Rectangle, bool) {
	if e.mode == ModeIdle {
		return e.rect, e.hasRect
	}
	e.PointerMove(p)
	e.mode = ModeIdle
	e.handle = HandleNone

	if e.rect.Dx() < 2 || e.rect.Dy() < 2 {
		e.rect, e.hasRect = e.prior, e.hasPrior
		e.logger.Debug("degenerate selection discarded")
		return e.rect, e.hasRect
	}
	return e.rect, true
}

// hitHandle finds the handle under p, checking corners before edges so a
// press near a corner never resolves to the adjoining edge.
func (e *Editor) hitHandle(p image.Point) Handle {
	r := e.rect
	near := func(a, b image.Point) bool {
		return chebyshev(a, b) <= e.hitRadius
	}
	switch {
	case near(p, r.Min):
		return HandleTopLeft
	case near(p, image.Pt(r.Max.X, r.Min.Y)):
		return HandleTopRight
	case near(p, image.Pt(r.Min.X, r.Max.Y)):
		return HandleBottomLeft
	case near(p, r.Max):
		return HandleBottomRight
	}
	withinY := p.Y >= r.Min.Y && p.Y <= r.Max.Y
	withinX := p.X >= r.Min.X && p.X <= r.Max.X
	switch {
	case withinY && abs(p.X-r.Min.X) <= e.hitRadius:
		return HandleLeft
	case withinY && abs(p.X-r.Max.X) <= e.hitRadius:
		return HandleRight
	case withinX && abs(p.Y-r.Min.Y) <= e.hitRadius:
		return HandleTop
	case withinX && abs(p.Y-r.Max.Y) <= e.hitRadius:
		return HandleBottom
	}
	return HandleNone
}

// resizeTo drags the grabbed handle to p. When an edge is dragged past its
// opposite the rectangle is normalized and the grab follows the edge it now
// holds, matching what the user sees.
func (e *Editor) resizeTo(p image.Point) {
	r := e.rect
	switch e.handle {
	case HandleTopLeft:
		r.Min = p
	case HandleTopRight:
		r.Max.X, r.Min.Y = p.X, p.Y
	case HandleBottomLeft:
		r.Min.X, r.Max.Y = p.X, p.Y
	case HandleBottomRight:
		r.Max = p
	case HandleLeft:
		r.Min.X = p.X
	case HandleRight:
		r.Max.X = p.X
	case HandleTop:
		r.Min.Y = p.Y
	case HandleBottom:
		r.Max.Y = p.Y
	}
	if r.Min.X > r.Max.X {
		e.handle = flipX(e.handle)
	}
	if r.Min.Y > r.Max.Y {
		e.handle = flipY(e.handle)
	}
	e.rect = clampTo(r.Canon(), e.bounds)
}

func flipX(h Handle) Handle {
	switch h {
	case HandleTopLeft:
		return HandleTopRight
	case HandleTopRight:
		return HandleTopLeft
	case HandleBottomLeft:
		return HandleBottomRight
	case HandleBottomRight:
		return HandleBottomLeft
	case HandleLeft:
		return HandleRight
	case HandleRight:
		return HandleLeft
	}
	return h
}

func flipY(h Handle) Handle {
	switch h {
	case HandleTopLeft:
		return HandleBottomLeft
	case HandleBottomLeft:
		return HandleTopLeft
	case HandleTopRight:
		return HandleBottomRight
	case HandleBottomRight:
		return HandleTopRight
	case HandleTop:
		return HandleBottom
	case HandleBottom:
		return HandleTop
	}
	return h
}

// span builds the canonical rectangle between two opposite corners.
func span(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: b}.Canon()
}

// clampTo intersects r with bounds, keeping a canonical result.
func clampTo(r, bounds image.Rectangle) image.Rectangle {
	out := r.Intersect(bounds)
	if out.Empty() {
		// Fully outside: collapse onto the nearest edge of bounds.
		out = image.Rectangle{
			Min: clampPoint(r.Min, bounds),
			Max: clampPoint(r.Max, bounds),
		}
	}
	return out
}

// keepInside translates r so it lies within bounds without changing its size.
func keepInside(r, bounds image.Rectangle) image.Rectangle {
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}
	if r.Max.X > bounds.Max.X {
		r = r.Add(image.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Add(image.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	return r
}

func clampPoint(p image.Point, b image.Rectangle) image.Point {
	return image.Pt(clampi(p.X, b.Min.X, b.Max.X), clampi(p.Y, b.Min.Y, b.Max.Y))
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func chebyshev(a, b image.Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
