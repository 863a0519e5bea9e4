package app

import (
	"image"
	"log/slog"

	"depthmark/config"
	"depthmark/domain/depth"
	"depthmark/domain/frames"
	"depthmark/domain/selection"
	"depthmark/domain/tracking"
	"depthmark/domain/viewport"
	"depthmark/ui/model"
	"depthmark/ui/presenter"
	"depthmark/ui/view"
)

// AppContainer assembles domain services, models, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Frames   *frames.Source
	Tracker  *tracking.Controller
	Nav      *Navigator
	Viewport *viewport.State
	Editor   *selection.Editor

	Track     *model.TrackModel
	Session   *model.SessionModel
	Selection *model.SelectionModel
	Stats     *model.StatsModel

	RootView *view.RootView
	UI       view.UI

	// Presenters
	Annotate         *presenter.AnnotatePresenter
	TrackPresenter   *presenter.TrackPresenter
	NavPresenter     *presenter.NavPresenter
	FramePresenter   *presenter.FramePresenter
	DepthPresenter   *presenter.DepthPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// invalidator adapts a redraw closure to the annotate presenter's view contract.
type invalidator func()

func (f invalidator) Invalidate() { f() }

// pairNumbers maps sequence indices to recorded frame numbers.
type pairNumbers struct{ src *frames.Source }

func (p pairNumbers) Number(i int) int {
	pr, err := p.src.Pair(i)
	if err != nil {
		return i
	}
	return pr.Number
}

// BuildContainer constructs all components over an opened frame source.
// The tracker kind comes validated from the config. Widgets are built later
// by the app wrapper; every view method is nil-safe until then.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, src *frames.Source, viewW, viewH int) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger, Frames: src}

	imgW, imgH, err := src.Size()
	if err != nil {
		return nil, err
	}
	c.Viewport = viewport.New(imgW, imgH, viewW, viewH)
	c.Editor = selection.NewEditor(c.Viewport.DisplayArea(), cfg.HandleHitRadius, logger)

	kind, err := tracking.ParseKind(cfg.Tracker)
	if err != nil {
		return nil, err
	}
	c.Tracker = tracking.NewController(src, tracking.NewHandle, kind, logger)
	c.Nav = NewNavigator(src.Len(), c.Tracker, logger)

	c.Track = &model.TrackModel{}
	c.Session = model.NewSessionModel()
	c.Selection = model.NewSelectionModel()
	c.Stats = model.NewStatsModel()

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	band := func() depth.Band { return depth.Band{Min: cfg.MinDepth, Max: cfg.MaxDepth} }
	c.FramePresenter = presenter.NewFramePresenter(src, c.Nav, c.Viewport, c.Editor, c.UI, logger)
	c.DepthPresenter = presenter.NewDepthPresenter(src, c.Nav, band, c.Stats, c.UI, logger)
	c.Annotate = presenter.NewAnnotatePresenter(c.Editor, c.Viewport, commitHook{c}, invalidator(func() {
		c.FramePresenter.Render()
	}), cfg.ZoomStep)
	c.TrackPresenter = presenter.NewTrackPresenter(c.Track, c.Nav, c.UI)
	c.NavPresenter = presenter.NewNavPresenter(c.Nav, pairNumbers{src}, c.UI, func() {
		c.Annotate.Refresh()
		c.DepthPresenter.Refresh()
	})
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Track, c.UI)

	c.Nav.OnTrackFailed(func() { c.TrackPresenter.HandleFailure() })
	return c, nil
}

// commitHook mirrors committed regions into the selection model and the
// session counter before handing them to the navigator.
type commitHook struct{ c *AppContainer }

func (h commitHook) Commit(r image.Rectangle) bool {
	if !h.c.Nav.Commit(r) {
		return false
	}
	h.c.Selection.SetRect(r)
	h.c.Session.OnCommit()
	h.c.DepthPresenter.Refresh()
	return true
}

func (h commitHook) AOI() (image.Rectangle, bool) { return h.c.Nav.AOI() }
