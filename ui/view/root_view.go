package view

import (
	"log/slog"
	"time"

	"depthmark/config"
	"depthmark/domain/depth"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Canvas   FrameCanvas
	Depth    DepthPanel
	Controls ControlPanel
	Status   StatusBar

	trackBtn *ButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	UpdateCanvas(png []byte)
	UpdateDepthPanel(png []byte)
	DepthUnavailable()
	SetStats(s depth.Stats, ok bool)
	UpdateThumb(png []byte)
	ThumbReset()
	SetFramePosition(index, number, total int)
	SetStatus(text string)
	SetSession(engaged, total time.Duration, commits int)
	SetTrackEngaged(bool)
	SetConfigEditable(bool)
}

// Handlers carries the user-action callbacks wired during Build.
type Handlers struct {
	Canvas         CanvasHandler
	OnPrev         func()
	OnNext         func()
	OnJumpBack     func()
	OnJumpForward  func()
	OnToggleTrack  func()
	OnClearBox     func()
	OnResetView    func()
	OnConfigChange func()
	OnExit         func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: the frame canvas on the left, the depth column
// on the right, navigation and tracker controls below, status bar last.
// viewW/viewH size the canvas; panelW/panelH size the depth rendering.
func (rv *RootView) Build(viewW, viewH, panelW, panelH int, h Handlers) {
	if rv == nil {
		return
	}
	rv.Canvas = NewFrameCanvas(0, 0, 3, viewW, viewH, h.Canvas)
	rv.Depth = NewDepthPanel(0, 1, panelW, panelH)

	btnFrame := Frame()
	Grid(btnFrame, Row(3), Column(0), Sticky("w"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text string
		fn   func()
	}{
		{"<<", h.OnJumpBack},
		{"<", h.OnPrev},
		{">", h.OnNext},
		{">>", h.OnJumpForward},
		{"Reset View", h.OnResetView},
		{"Clear Box", h.OnClearBox},
	}
	for i, b := range buttons {
		btn := Button(Txt(b.text), Command(b.fn))
		Grid(btn, In(btnFrame), Row(0), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	rv.trackBtn = Button(Txt("Tracking: off"), Command(h.OnToggleTrack))
	Grid(rv.trackBtn, In(btnFrame), Row(0), Column(len(buttons)), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(len(buttons)+1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.Controls = NewControlPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnConfigChange)
	rv.Controls.Build(3, 1)

	rv.Status = NewStatusBar(4)

	// Keyboard navigation mirrors the buttons.
	Bind(App, "<Left>", Command(func() { h.OnPrev() }))
	Bind(App, "<Right>", Command(func() { h.OnNext() }))
	Bind(App, "<Shift-Left>", Command(func() { h.OnJumpBack() }))
	Bind(App, "<Shift-Right>", Command(func() { h.OnJumpForward() }))
	Bind(App, "<t>", Command(func() { h.OnToggleTrack() }))
	Bind(App, "<Escape>", Command(func() { h.OnClearBox() }))
}

// UpdateCanvas proxies to the frame canvas.
func (rv *RootView) UpdateCanvas(png []byte) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.UpdateCanvas(png)
	}
}

// UpdateDepthPanel proxies to the depth column.
func (rv *RootView) UpdateDepthPanel(png []byte) {
	if rv != nil && rv.Depth != nil {
		rv.Depth.UpdateDepthPanel(png)
	}
}

// DepthUnavailable proxies to the depth column.
func (rv *RootView) DepthUnavailable() {
	if rv != nil && rv.Depth != nil {
		rv.Depth.DepthUnavailable()
	}
}

// SetStats proxies to the depth column.
func (rv *RootView) SetStats(s depth.Stats, ok bool) {
	if rv != nil && rv.Depth != nil {
		rv.Depth.SetStats(s, ok)
	}
}

// UpdateThumb proxies to the depth column.
func (rv *RootView) UpdateThumb(png []byte) {
	if rv != nil && rv.Depth != nil {
		rv.Depth.UpdateThumb(png)
	}
}

// ThumbReset proxies to the depth column.
func (rv *RootView) ThumbReset() {
	if rv != nil && rv.Depth != nil {
		rv.Depth.ThumbReset()
	}
}

// SetFramePosition proxies to the status bar.
func (rv *RootView) SetFramePosition(index, number, total int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetFramePosition(index, number, total)
	}
}

// SetStatus proxies to the status bar.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetSession proxies to the status bar.
func (rv *RootView) SetSession(engaged, total time.Duration, commits int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(engaged, total, commits)
	}
}

// SetTrackEngaged reflects continuity state on the toggle button.
func (rv *RootView) SetTrackEngaged(on bool) {
	if rv == nil || rv.trackBtn == nil {
		return
	}
	if on {
		rv.trackBtn.Configure(Txt("Tracking: on"))
	} else {
		rv.trackBtn.Configure(Txt("Tracking: off"))
	}
}

// SetConfigEditable toggles control panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.Controls != nil {
		rv.Controls.SetEditable(enabled)
	}
}
