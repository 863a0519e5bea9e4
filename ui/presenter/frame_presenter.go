package presenter

import (
	"image"
	"image/color"
	"log/slog"

	"depthmark/domain/selection"
	"depthmark/domain/viewport"
	"depthmark/ui/images"
)

// ImageSource decodes frames by index for rendering.
type ImageSource interface {
	Image(i int) (image.Image, error)
}

// CanvasView receives the rendered main canvas and the region thumbnail.
type CanvasView interface {
	UpdateCanvas(png []byte)
	UpdateThumb(png []byte)
	ThumbReset()
}

const (
	maxThumbW = 160
	maxThumbH = 160
)

var (
	selectionOutline = color.RGBA{G: 0xff, A: 0xff}
	selectionGrip    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// FramePresenter renders the current frame through the viewport onto the
// canvas, overlays the selection rectangle with its resize grips, and keeps
// the region thumbnail current. Decoded frames are cached per index.
type FramePresenter struct {
	source ImageSource
	nav    RegionSource
	vp     *viewport.State
	editor *selection.Editor
	view   CanvasView
	logger *slog.Logger

	cachedIndex int
	cachedImage image.Image
}

func NewFramePresenter(source ImageSource, nav RegionSource, vp *viewport.State, editor *selection.Editor, view CanvasView, logger *slog.Logger) *FramePresenter {
	return &FramePresenter{source: source, nav: nav, vp: vp, editor: editor, view: view, logger: logger, cachedIndex: -1}
}

// Invalidate drops the cached frame so the next Render decodes again.
func (p *FramePresenter) Invalidate() {
	if p == nil {
		return
	}
	p.cachedIndex = -1
	p.cachedImage = nil
}

// Render composes the visible crop, the selection overlay and the thumbnail.
func (p *FramePresenter) Render() {
	if p == nil || p.source == nil || p.nav == nil || p.view == nil {
		return
	}
	frame := p.frame()
	vw, vh := p.vp.ViewSize()
	canvas := images.Compose(frame, p.vp.Crop(), vw, vh, p.vp.DisplayArea())

	if rect, ok := p.editor.Rect(); ok {
		images.DrawRectOutline(canvas, rect, selectionOutline, 2)
		images.DrawHandles(canvas, rect, selectionGrip, 6)
	}
	p.view.UpdateCanvas(images.EncodePNG(canvas))
	p.renderThumb(frame)
}

func (p *FramePresenter) renderThumb(frame image.Image) {
	aoi, ok := p.nav.AOI()
	if !ok || frame == nil {
		p.view.ThumbReset()
		return
	}
	cut, _, err := images.CropAOI(frame, aoi)
	if err != nil {
		p.view.ThumbReset()
		return
	}
	p.view.UpdateThumb(images.EncodePNG(images.ScaleToFit(cut, maxThumbW, maxThumbH)))
}

func (p *FramePresenter) frame() image.Image {
	i := p.nav.Index()
	if p.cachedIndex == i && p.cachedImage != nil {
		return p.cachedImage
	}
	img, err := p.source.Image(i)
	if err != nil {
		p.logger.Error("frame decode failed", slog.Int("frame", i), slog.Any("error", err))
		return p.cachedImage
	}
	p.cachedIndex = i
	p.cachedImage = img
	return img
}
