package presenter

import (
	"image"

	"depthmark/domain/selection"
	"depthmark/domain/viewport"
)

// RegionCommitter narrows what the presenter needs from the navigation layer.
type RegionCommitter interface {
	Commit(image.Rectangle) bool
	AOI() (image.Rectangle, bool)
}

// AnnotateView is the drawing surface the presenter invalidates.
type AnnotateView interface {
	Invalidate()
}

// AnnotatePresenter mediates pointer input on the canvas: left-button
// gestures edit the selection, the wheel zooms around the cursor and
// right-button drags pan. The selection editor works in display coordinates;
// committed regions live in frame coordinates on the navigator, so every
// viewport change reprojects the editor from the committed region.
type AnnotatePresenter struct {
	editor *selection.Editor
	vp     *viewport.State
	nav    RegionCommitter
	view   AnnotateView

	zoomStep float64

	downRect image.Rectangle
	downHas  bool
	panLast  image.Point
	panning  bool
}

func NewAnnotatePresenter(editor *selection.Editor, vp *viewport.State, nav RegionCommitter, view AnnotateView, zoomStep float64) *AnnotatePresenter {
	if zoomStep <= 1 {
		zoomStep = 1.2
	}
	return &AnnotatePresenter{editor: editor, vp: vp, nav: nav, view: view, zoomStep: zoomStep}
}

// PointerDown begins a selection gesture at display point p.
func (p *AnnotatePresenter) PointerDown(pt image.Point) {
	if p == nil {
		return
	}
	p.downRect, p.downHas = p.editor.Rect()
	p.editor.PointerDown(pt)
	p.view.Invalidate()
}

// PointerMove advances an in-flight gesture.
func (p *AnnotatePresenter) PointerMove(pt image.Point) {
	if p == nil || p.editor.Mode() == selection.ModeIdle {
		return
	}
	p.editor.PointerMove(pt)
	p.view.Invalidate()
}

// PointerUp ends the gesture and, when the rectangle actually changed,
// commits it in frame coordinates. A stray click that reverts to the prior
// rectangle commits nothing, so a live tracker is not needlessly rebound.
func (p *AnnotatePresenter) PointerUp(pt image.Point) {
	if p == nil {
		return
	}
	rect, ok := p.editor.PointerUp(pt)
	if ok && (!p.downHas || rect != p.downRect) {
		p.nav.Commit(p.vp.DisplayToImage(rect))
	}
	p.view.Invalidate()
}

// Wheel zooms by one notch around the cursor. Positive delta zooms in.
func (p *AnnotatePresenter) Wheel(delta int, cursor image.Point) {
	if p == nil || delta == 0 {
		return
	}
	factor := p.zoomStep
	if delta < 0 {
		factor = 1 / p.zoomStep
	}
	if p.vp.ZoomAt(factor, cursor) {
		p.Refresh()
	}
}

// PanStart begins a right-button pan at display point pt.
func (p *AnnotatePresenter) PanStart(pt image.Point) {
	if p == nil {
		return
	}
	p.panning = true
	p.panLast = pt
}

// PanMove follows the pointer while panning.
func (p *AnnotatePresenter) PanMove(pt image.Point) {
	if p == nil || !p.panning {
		return
	}
	d := pt.Sub(p.panLast)
	p.panLast = pt
	if p.vp.Pan(d.X, d.Y) {
		p.Refresh()
	}
}

// PanEnd finishes the pan gesture.
func (p *AnnotatePresenter) PanEnd() {
	if p == nil {
		return
	}
	p.panning = false
}

// ResetView returns to the whole-frame view.
func (p *AnnotatePresenter) ResetView() {
	if p == nil {
		return
	}
	p.vp.Reset()
	p.Refresh()
}

// Refresh reprojects the committed region into display space and redraws.
// Call after anything that moved the viewport or changed the region from
// outside the pointer flow (frame steps, tracker updates, window resizes).
func (p *AnnotatePresenter) Refresh() {
	if p == nil {
		return
	}
	p.editor.SetBounds(p.vp.DisplayArea())
	if aoi, ok := p.nav.AOI(); ok {
		if disp, visible := p.vp.ImageToDisplay(aoi); visible {
			p.editor.SetRect(disp)
		} else {
			p.editor.Clear()
		}
	} else {
		p.editor.Clear()
	}
	p.view.Invalidate()
}
