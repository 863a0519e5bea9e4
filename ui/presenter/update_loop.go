package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// Rendering happens on demand (pointer events, frame steps); the loop only
// advances the session clock and reschedules itself. The zero value is
// usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, schedule func()) *Loop {
	return &Loop{Session: sess, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Session != nil {
		l.Session.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
