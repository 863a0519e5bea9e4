package app

import (
	"context"
	"image"
	"log/slog"
)

// TrackController is the tracking surface the navigator drives. Satisfied by
// *tracking.Controller.
type TrackController interface {
	Initialized() bool
	Enable(index int, region image.Rectangle) bool
	Disable()
	AdvanceBy(ctx context.Context, delta int) (image.Rectangle, bool)
}

// Navigator owns the current frame index and the annotated region, and keeps
// the tracker consistent with both. Frame stepping wraps around the sequence
// in either direction.
//
// It is driven from the UI thread only.
type Navigator struct {
	tracker TrackController
	length  int
	logger  *slog.Logger

	index  int
	aoi    image.Rectangle // frame coordinates
	hasAOI bool

	onTrackFailed func()
}

// NewNavigator returns a navigator over a sequence of length frames,
// positioned at frame 0 with no annotation.
func NewNavigator(length int, tracker TrackController, logger *slog.Logger) *Navigator {
	if length < 1 {
		length = 1
	}
	return &Navigator{tracker: tracker, length: length, logger: logger}
}

// OnTrackFailed registers a callback fired when a step loses the target.
func (n *Navigator) OnTrackFailed(fn func()) { n.onTrackFailed = fn }

// Index reports the current frame index.
func (n *Navigator) Index() int { return n.index }

// Len reports the sequence length.
func (n *Navigator) Len() int { return n.length }

// AOI reports the annotated region, if any.
func (n *Navigator) AOI() (image.Rectangle, bool) { return n.aoi, n.hasAOI }

// Restore positions the navigator without touching the tracker. Used once at
// startup to pick up the persisted session.
func (n *Navigator) Restore(index int, aoi image.Rectangle) {
	n.index = mod(index, n.length)
	n.aoi = aoi.Canon()
	n.hasAOI = !n.aoi.Empty()
}

// Step moves delta frames (wrapping) and reports the new index. With tracking
// engaged the tracker walks every intermediate frame and, on success, the
// region follows the target. On a failed walk tracking turns off, the last
// region is kept for display, the failure callback fires, and the frame still
// changes: losing the target never pins the user to a frame.
func (n *Navigator) Step(ctx context.Context, delta int) int {
	if delta == 0 {
		return n.index
	}
	target := mod(n.index+delta, n.length)

	if n.tracker.Initialized() {
		if rect, ok := n.tracker.AdvanceBy(ctx, delta); ok {
			n.aoi = rect
			n.hasAOI = true
		} else {
			n.logger.Warn("target lost while stepping",
				slog.Int("from", n.index),
				slog.Int("to", target),
			)
			if n.onTrackFailed != nil {
				n.onTrackFailed()
			}
		}
	}
	n.index = target
	return n.index
}

// Commit installs a manually edited region. A live tracker is re-initialized
// from it so continuity always resumes from what the user drew.
func (n *Navigator) Commit(rect image.Rectangle) bool {
	rect = rect.Canon()
	if rect.Empty() {
		return false
	}
	n.aoi = rect
	n.hasAOI = true
	if n.tracker.Initialized() {
		if !n.tracker.Enable(n.index, rect) {
			n.logger.Warn("tracker re-init failed after edit", slog.Int("frame", n.index))
			if n.onTrackFailed != nil {
				n.onTrackFailed()
			}
		}
	}
	return true
}

// ClearAOI drops the region and disables tracking.
func (n *Navigator) ClearAOI() {
	n.aoi = image.Rectangle{}
	n.hasAOI = false
	n.tracker.Disable()
}

// EnableTracking binds the tracker to the current region. Reports false when
// there is nothing to track or the tracker rejects the region.
func (n *Navigator) EnableTracking() bool {
	if !n.hasAOI {
		return false
	}
	return n.tracker.Enable(n.index, n.aoi)
}

// DisableTracking turns continuity off, keeping the region.
func (n *Navigator) DisableTracking() {
	n.tracker.Disable()
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
