package presenter

import (
	"image"
	"image/color"
	"log/slog"

	"depthmark/domain/depth"
	"depthmark/ui/images"
	"depthmark/ui/model"
)

// GridSource loads depth grids by frame index. A (nil, nil) return means the
// frame was recorded without depth.
type GridSource interface {
	DepthGrid(i int) (*depth.Grid, error)
}

// RegionSource narrows what the presenter needs from the navigation layer.
type RegionSource interface {
	Index() int
	AOI() (image.Rectangle, bool)
}

// BandSource supplies the currently configured valid depth range.
type BandSource func() depth.Band

// DepthView receives the rendered depth panel and the region statistics.
type DepthView interface {
	UpdateDepthPanel(png []byte)
	DepthUnavailable()
	SetStats(s depth.Stats, ok bool)
}

// Display size of the depth rendering.
const (
	DepthPanelW = 480
	DepthPanelH = 270
)

// aoiOutline marks the annotated region on the depth panel.
var aoiOutline = color.RGBA{R: 0xff, G: 0xff, A: 0xff}

// DepthPresenter renders the false-color depth panel and extracts statistics
// for the annotated region. Grids are cached per frame index; a band change
// or a frame step forces a reload of the rendering.
type DepthPresenter struct {
	source GridSource
	nav    RegionSource
	band   BandSource
	stats  *model.StatsModel
	view   DepthView
	logger *slog.Logger

	cachedIndex int
	cachedGrid  *depth.Grid
	hasCache    bool
}

func NewDepthPresenter(source GridSource, nav RegionSource, band BandSource, stats *model.StatsModel, view DepthView, logger *slog.Logger) *DepthPresenter {
	return &DepthPresenter{source: source, nav: nav, band: band, stats: stats, view: view, logger: logger}
}

// Invalidate drops the cached grid so the next Refresh reloads from disk.
func (p *DepthPresenter) Invalidate() {
	if p == nil {
		return
	}
	p.hasCache = false
	p.cachedGrid = nil
}

// Refresh renders the panel for the current frame and recomputes statistics
// over the current region. Frames without depth show as unavailable and
// clear the statistics; the selection itself stays committable.
func (p *DepthPresenter) Refresh() {
	if p == nil || p.source == nil || p.nav == nil || p.view == nil {
		return
	}
	g, err := p.grid()
	if err != nil {
		p.logger.Error("depth grid load failed", slog.Int("frame", p.nav.Index()), slog.Any("error", err))
		g = nil
	}
	band := p.band()

	if g == nil {
		p.stats.Clear()
		p.view.DepthUnavailable()
		p.view.SetStats(depth.Stats{}, false)
		return
	}

	panel := depth.Colorize(g, band)
	if aoi, ok := p.nav.AOI(); ok {
		images.DrawRectOutline(panel, aoi, aoiOutline, 2)
	}
	p.view.UpdateDepthPanel(images.EncodePNG(images.ScaleToFit(panel, DepthPanelW, DepthPanelH)))

	if aoi, ok := p.nav.AOI(); ok {
		s, valid := depth.Extract(g, aoi, band)
		p.stats.Set(s, valid)
		p.view.SetStats(s, valid)
	} else {
		p.stats.Clear()
		p.view.SetStats(depth.Stats{}, false)
	}
}

func (p *DepthPresenter) grid() (*depth.Grid, error) {
	i := p.nav.Index()
	if p.hasCache && p.cachedIndex == i {
		return p.cachedGrid, nil
	}
	g, err := p.source.DepthGrid(i)
	if err != nil {
		return nil, err
	}
	p.cachedIndex = i
	p.cachedGrid = g
	p.hasCache = true
	return g, nil
}
