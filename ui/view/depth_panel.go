package view

import (
	"fmt"
	"image"

	"depthmark/domain/depth"
	"depthmark/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// DepthPanel shows the false-color depth rendering, the region thumbnail and
// the extracted statistics.
type DepthPanel interface {
	UpdateDepthPanel(png []byte)
	DepthUnavailable()
	SetStats(s depth.Stats, ok bool)
	UpdateThumb(png []byte)
	ThumbReset()
}

type depthPanel struct {
	depthLabel *LabelWidget
	thumbLabel *LabelWidget
	statsLabel *LabelWidget

	prevDepthPhoto *Img
	prevThumbPhoto *Img
	panelW, panelH int
}

// NewDepthPanel builds the depth column: rendering on top, thumbnail and
// statistics below, starting at (row, col).
func NewDepthPanel(row, col, panelW, panelH int) DepthPanel {
	blank := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, panelW, panelH)))
	depthPhoto := NewPhoto(Data(blank))
	thumbPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 160, 120)))))

	dl := Label(Image(depthPhoto), Borderwidth(1), Relief("sunken"))
	Grid(dl, Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	tl := Label(Image(thumbPhoto), Borderwidth(1), Relief("sunken"))
	Grid(tl, Row(row+1), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	sl := Label(Txt("depth: no data"), Anchor("w"), Justify("left"))
	Grid(sl, Row(row+2), Column(col), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	return &depthPanel{
		depthLabel:     dl,
		thumbLabel:     tl,
		statsLabel:     sl,
		prevDepthPhoto: depthPhoto,
		prevThumbPhoto: thumbPhoto,
		panelW:         panelW,
		panelH:         panelH,
	}
}

func (v *depthPanel) UpdateDepthPanel(png []byte) {
	if v == nil || v.depthLabel == nil || len(png) == 0 {
		return
	}
	if v.prevDepthPhoto != nil {
		v.prevDepthPhoto.Delete()
	}
	photo := NewPhoto(Data(png))
	v.prevDepthPhoto = photo
	v.depthLabel.Configure(Image(photo))
}

func (v *depthPanel) DepthUnavailable() {
	if v == nil || v.depthLabel == nil {
		return
	}
	if v.prevDepthPhoto != nil {
		v.prevDepthPhoto.Delete()
	}
	blank := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, v.panelW, v.panelH)))
	v.prevDepthPhoto = NewPhoto(Data(blank))
	v.depthLabel.Configure(Image(v.prevDepthPhoto))
}

func (v *depthPanel) SetStats(s depth.Stats, ok bool) {
	if v == nil || v.statsLabel == nil {
		return
	}
	if !ok {
		v.statsLabel.Configure(Txt("depth: no valid values"))
		return
	}
	v.statsLabel.Configure(Txt(fmt.Sprintf(
		"mean %.2fm | min %.2fm | max %.2fm | std %.2fm | n=%d",
		s.Mean, s.Min, s.Max, s.Std, s.Count,
	)))
}

func (v *depthPanel) UpdateThumb(png []byte) {
	if v == nil || v.thumbLabel == nil || len(png) == 0 {
		return
	}
	if v.prevThumbPhoto != nil {
		v.prevThumbPhoto.Delete()
	}
	photo := NewPhoto(Data(png))
	v.prevThumbPhoto = photo
	v.thumbLabel.Configure(Image(photo))
}

func (v *depthPanel) ThumbReset() {
	if v == nil || v.thumbLabel == nil {
		return
	}
	if v.prevThumbPhoto != nil {
		v.prevThumbPhoto.Delete()
	}
	blank := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 160, 120)))
	v.prevThumbPhoto = NewPhoto(Data(blank))
	v.thumbLabel.Configure(Image(v.prevThumbPhoto))
}
