package presenter

// TrackStateModel provides engaged state access.
type TrackStateModel interface {
	Engaged() bool
	SetEngaged(bool)
}

// TrackNavigator narrows what the presenter needs from the navigation layer.
type TrackNavigator interface {
	EnableTracking() bool
	DisableTracking()
}

// TrackView updates UI elements affected by toggling continuity. The config
// panel is locked while engaged so the tracker backend cannot change under a
// live tracker.
type TrackView interface {
	SetTrackEngaged(bool)
	SetStatus(string)
	SetConfigEditable(bool)
}

// TrackPresenter owns presentation logic for toggling tracking continuity.
type TrackPresenter struct {
	model TrackStateModel
	nav   TrackNavigator
	view  TrackView
}

func NewTrackPresenter(model TrackStateModel, nav TrackNavigator, view TrackView) *TrackPresenter {
	return &TrackPresenter{model: model, nav: nav, view: view}
}

// Enable engages continuity from the current region. Refused when there is
// no region or the tracker rejects it. Idempotent.
func (p *TrackPresenter) Enable() {
	if p == nil || p.model == nil || p.nav == nil || p.view == nil {
		return
	}
	if p.model.Engaged() { // already engaged
		return
	}
	if !p.nav.EnableTracking() {
		p.view.SetTrackEngaged(false)
		p.view.SetStatus("draw a box before enabling tracking")
		return
	}
	p.model.SetEngaged(true)
	p.view.SetTrackEngaged(true)
	p.view.SetConfigEditable(false)
	p.view.SetStatus("tracking on")
}

// Disable turns continuity off, keeping the region visible. Idempotent.
func (p *TrackPresenter) Disable() {
	if p == nil || p.model == nil || p.nav == nil || p.view == nil {
		return
	}
	if !p.model.Engaged() { // already off
		return
	}
	p.nav.DisableTracking()
	p.model.SetEngaged(false)
	p.view.SetTrackEngaged(false)
	p.view.SetConfigEditable(true)
	p.view.SetStatus("tracking off")
}

// Toggle flips engaged state delegating to Enable/Disable.
func (p *TrackPresenter) Toggle() {
	if p == nil || p.model == nil || p.nav == nil || p.view == nil {
		return
	}
	if p.model.Engaged() {
		p.Disable()
		return
	}
	p.Enable()
}

// HandleFailure reflects a lost target: the tracker has already shut itself
// down, so only the model and view need to catch up.
func (p *TrackPresenter) HandleFailure() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	p.model.SetEngaged(false)
	p.view.SetTrackEngaged(false)
	p.view.SetConfigEditable(true)
	p.view.SetStatus("target lost, tracking off")
}
