package view

import (
	"image"

	"depthmark/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasHandler receives pointer input on the frame canvas in display
// coordinates. Satisfied by the annotate presenter.
type CanvasHandler interface {
	PointerDown(p image.Point)
	PointerMove(p image.Point)
	PointerUp(p image.Point)
	PanStart(p image.Point)
	PanMove(p image.Point)
	PanEnd()
	Wheel(delta int, cursor image.Point)
}

// FrameCanvas is the main drawing surface showing the zoomed frame crop.
type FrameCanvas interface {
	UpdateCanvas(png []byte)
	Size() (int, int)
}

type frameCanvas struct {
	label     *LabelWidget
	prevPhoto *Img
	w, h      int
}

// NewFrameCanvas creates the canvas label at the given grid cell and binds
// pointer events to the handler. Left button edits the selection, right
// button pans, the wheel zooms.
func NewFrameCanvas(row, col, rowspan, w, h int, handler CanvasHandler) FrameCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(col), Rowspan(rowspan), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &frameCanvas{label: label, prevPhoto: photo, w: w, h: h}

	at := func(e *Event) image.Point { return image.Pt(int(e.X), int(e.Y)) }
	Bind(label, "<ButtonPress-1>", Command(func(e *Event) { handler.PointerDown(at(e)) }))
	Bind(label, "<B1-Motion>", Command(func(e *Event) { handler.PointerMove(at(e)) }))
	Bind(label, "<ButtonRelease-1>", Command(func(e *Event) { handler.PointerUp(at(e)) }))
	Bind(label, "<ButtonPress-3>", Command(func(e *Event) { handler.PanStart(at(e)) }))
	Bind(label, "<B3-Motion>", Command(func(e *Event) { handler.PanMove(at(e)) }))
	Bind(label, "<ButtonRelease-3>", Command(func(e *Event) { handler.PanEnd() }))
	Bind(label, "<MouseWheel>", Command(func(e *Event) { handler.Wheel(int(e.Delta), at(e)) }))
	// X11 reports the wheel as button 4/5 presses.
	Bind(label, "<ButtonPress-4>", Command(func(e *Event) { handler.Wheel(1, at(e)) }))
	Bind(label, "<ButtonPress-5>", Command(func(e *Event) { handler.Wheel(-1, at(e)) }))
	return v
}

func (v *frameCanvas) UpdateCanvas(png []byte) {
	if v == nil || v.label == nil || len(png) == 0 {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(png))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *frameCanvas) Size() (int, int) {
	if v == nil {
		return 0, 0
	}
	return v.w, v.h
}
