package presenter

import (
	"time"

	"depthmark/ui/model"
)

// TrackEngagedModel reports whether tracking is engaged.
type TrackEngagedModel interface{ Engaged() bool }

// SessionView displays formatted session durations and the commit count.
type SessionView interface {
	SetSession(engaged, total time.Duration, commits int)
}

// SessionPresenter pushes engaged-time and commit counts from the model to
// the view.
type SessionPresenter struct {
	sess  *model.SessionModel
	track TrackEngagedModel
	view  SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, track TrackEngagedModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, track: track, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.track == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.track.Engaged(), now)
	e, total, commits := p.sess.Values()
	p.view.SetSession(e, total, commits)
}
