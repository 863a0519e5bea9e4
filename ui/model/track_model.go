package model

import (
	"sync/atomic"
)

// TrackModel tracks whether tracking continuity is engaged. The zero value is
// disengaged and usable. Concurrency-safe via atomic Bool because UI
// callbacks and presenter ticks may race.
type TrackModel struct{ engaged atomic.Bool }

// Engaged reports whether tracking is currently engaged.
func (m *TrackModel) Engaged() bool {
	if m == nil {
		return false
	}
	return m.engaged.Load()
}

// SetEngaged stores the engaged flag.
func (m *TrackModel) SetEngaged(b bool) {
	if m == nil {
		return
	}
	if m.engaged.Load() == b { // no change
		return
	}
	m.engaged.Store(b)
}
