package model

import (
	"time"
)

// SessionModel tracks how long tracking has been engaged in the current run
// and how many annotations were committed. It is decoupled from the UI;
// presenters poll Values() and update views. The zero value is ready to use.
type SessionModel struct {
	active      bool
	engagedAt   time.Time
	lastEngaged time.Duration
	accumulated time.Duration
	commits     int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current tracking state and timestamp.
// Call periodically from a presenter tick.
func (m *SessionModel) OnTick(engaged bool, now time.Time) {
	if m == nil {
		return
	}
	if engaged {
		if !m.active { // transition off -> on
			m.active = true
			m.engagedAt = now
			m.lastEngaged = 0
		}
		m.lastEngaged = now.Sub(m.engagedAt)
	} else if m.active { // transition on -> off
		m.lastEngaged = now.Sub(m.engagedAt)
		m.accumulated += m.lastEngaged
		m.active = false
	}
}

// OnCommit records one committed annotation.
func (m *SessionModel) OnCommit() {
	if m == nil {
		return
	}
	m.commits++
}

// Values returns the current engaged duration, the total engaged duration
// across the run, and the number of committed annotations. The total includes
// the ongoing stretch when tracking is on.
func (m *SessionModel) Values() (engaged, total time.Duration, commits int) {
	if m == nil {
		return 0, 0, 0
	}
	engaged = m.lastEngaged
	total = m.accumulated
	if m.active {
		total += engaged
	}
	commits = m.commits
	return
}
