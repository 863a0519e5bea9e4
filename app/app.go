package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"depthmark/config"
	"depthmark/domain/frames"
	"depthmark/domain/tracking"
	"depthmark/ui/presenter"
	"depthmark/ui/theme"
	"depthmark/ui/view"
)

const (
	tick = 200 * time.Millisecond

	canvasW = 960
	canvasH = 540
)

// App owns the Tk main window and the update loop. All widget access happens
// on the Tk event thread; TclAfter keeps the loop there.
type app struct {
	c       *AppContainer
	cfgPath string
	afterID string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp opens the frame sequence and assembles the application.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) (*app, error) {
	src, err := frames.Open(cfg.FramesDir, logger)
	if err != nil {
		return nil, err
	}
	c, err := BuildContainer(cfg, logger, cfgPath, src, canvasW, canvasH)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &app{c: c, cfgPath: cfgPath, ctx: ctx, cancel: cancel}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("+%d+%d", 100, 100))
	return a, nil
}

// Start builds the widget tree, restores the persisted session and enters
// the Tk main loop. Blocks until the window closes.
func (a *app) Start() {
	theme.InitStyles()

	c := a.c
	c.RootView.Build(canvasW, canvasH, presenter.DepthPanelW, presenter.DepthPanelH, view.Handlers{
		Canvas:        c.Annotate,
		OnPrev:        func() { c.NavPresenter.Prev(a.ctx) },
		OnNext:        func() { c.NavPresenter.Next(a.ctx) },
		OnJumpBack:    func() { c.NavPresenter.JumpBack(a.ctx) },
		OnJumpForward: func() { c.NavPresenter.JumpForward(a.ctx) },
		OnToggleTrack: func() { c.TrackPresenter.Toggle() },
		OnClearBox:    a.clearBox,
		OnResetView:   func() { c.Annotate.ResetView() },
		OnConfigChange: func() {
			a.applyConfig()
		},
		OnExit: a.exitHandler,
	})

	a.restoreSession()

	c.NavPresenter.Refresh()
	c.Annotate.Refresh()
	c.DepthPresenter.Refresh()

	loop := presenter.NewLoop(c.SessionPresenter, a.scheduleUpdate)
	c.Loop = loop
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	if a.c.Loop != nil {
		a.c.Loop.Tick()
	}
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) clearBox() {
	c := a.c
	c.TrackPresenter.Disable()
	c.Nav.ClearAOI()
	c.Selection.SetRect(image.Rectangle{})
	c.Annotate.Refresh()
	c.DepthPresenter.Refresh()
	c.UI.SetStatus("selection cleared")
}

// applyConfig reacts to a saved control-panel change: the depth band feeds
// the next render directly, the tracker kind needs a controller switch. The
// panel is locked while tracking is engaged, so the switch never tears down a
// live tracker.
func (a *app) applyConfig() {
	c := a.c
	if kind, err := tracking.ParseKind(c.Config.Tracker); err == nil {
		c.Tracker.SetKind(kind)
	}
	c.DepthPresenter.Refresh()
	c.UI.SetStatus("settings applied")
}

// restoreSession picks up the frame index and selection persisted on the
// previous exit.
func (a *app) restoreSession() {
	c := a.c
	var aoi image.Rectangle
	if c.Config.SelectionW > 0 && c.Config.SelectionH > 0 {
		aoi = image.Rect(
			c.Config.SelectionX,
			c.Config.SelectionY,
			c.Config.SelectionX+c.Config.SelectionW,
			c.Config.SelectionY+c.Config.SelectionH,
		)
	}
	c.Nav.Restore(c.Config.LastFrameIndex, aoi)
	c.Selection.SetRect(aoi)
}

func (a *app) exitHandler() {
	a.cancel()
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.persistSession()
	Destroy(App)
}

// persistSession writes the frame index and selection back to the config so
// the next run resumes where this one stopped.
func (a *app) persistSession() {
	c := a.c
	c.Config.LastFrameIndex = c.Nav.Index()
	if aoi, ok := c.Nav.AOI(); ok {
		c.Config.SelectionX = aoi.Min.X
		c.Config.SelectionY = aoi.Min.Y
		c.Config.SelectionW = aoi.Dx()
		c.Config.SelectionH = aoi.Dy()
	} else {
		c.Config.SelectionX, c.Config.SelectionY = 0, 0
		c.Config.SelectionW, c.Config.SelectionH = 0, 0
	}
	if err := c.Config.Save(a.cfgPath); err != nil {
		c.Logger.Error("session save failed", slog.Any("error", err))
		return
	}
	c.Logger.Info("session saved",
		slog.Int("frame", c.Config.LastFrameIndex),
		slog.String("path", a.cfgPath),
	)
}
