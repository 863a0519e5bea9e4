package model

import (
	"depthmark/domain/depth"
)

// StatsModel holds the depth statistics of the current selection. Zero value
// means no statistics and is usable. Updates occur on the UI thread tick.
type StatsModel struct {
	stats depth.Stats
	valid bool
}

func NewStatsModel() *StatsModel { return &StatsModel{} }

// Set stores a fresh extraction result.
func (m *StatsModel) Set(s depth.Stats, ok bool) {
	if m == nil {
		return
	}
	m.stats, m.valid = s, ok
}

// Clear drops the stored statistics.
func (m *StatsModel) Clear() {
	if m == nil {
		return
	}
	m.stats, m.valid = depth.Stats{}, false
}

// Values returns the stored statistics and whether they are meaningful.
func (m *StatsModel) Values() (depth.Stats, bool) {
	if m == nil {
		return depth.Stats{}, false
	}
	return m.stats, m.valid
}
