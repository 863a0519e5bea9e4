// Package tracking carries an annotated region across frames with a visual
// tracker. The Controller owns the tracker lifecycle: it is (re)initialized
// from a manually edited region and then stepped frame by frame, walking
// every intermediate frame so the tracker never sees a gap.
package tracking

import (
	"context"
	"image"
	"log/slog"
)

// Controller binds one tracker to one frame sequence. It is not safe for
// concurrent use; the UI drives it from a single thread.
type Controller struct {
	seq     Sequence
	factory Factory
	kind    Kind
	logger  *slog.Logger

	handle      Handle
	initialized bool
	boundIndex  int
	boundRect   image.Rectangle

	// onFail is invoked after a failed walk disables tracking.
	onFail func()
}

// NewController returns a disabled controller over seq.
func NewController(seq Sequence, factory Factory, kind Kind, logger *slog.Logger) *Controller {
	return &Controller{seq: seq, factory: factory, kind: kind, logger: logger}
}

// SetKind switches the algorithm used for the next Enable. A live tracker is
// torn down; the caller re-enables from a fresh region.
func (c *Controller) SetKind(kind Kind) {
	if kind == c.kind {
		return
	}
	c.kind = kind
	c.Disable()
}

// Kind reports the configured algorithm.
func (c *Controller) Kind() Kind { return c.kind }

// OnFail registers a callback fired when a walk fails and tracking turns off.
func (c *Controller) OnFail(fn func()) { c.onFail = fn }

// Initialized reports whether a live tracker is bound to a region.
func (c *Controller) Initialized() bool { return c.initialized }

// Bound reports the frame index and region the tracker last locked onto.
func (c *Controller) Bound() (int, image.Rectangle, bool) {
	return c.boundIndex, c.boundRect, c.initialized
}

// Enable builds a fresh tracker bound to region in frame index. Any previous
// tracker is discarded first. A manual edit of the region re-enters here so
// the tracker always starts from what the user drew.
func (c *Controller) Enable(index int, region image.Rectangle) bool {
	c.teardown()
	if region.Dx() < 1 || region.Dy() < 1 {
		c.logger.Warn("tracker rejected degenerate region", slog.String("region", region.String()))
		return false
	}
	f, err := c.seq.Frame(index)
	if err != nil {
		c.logger.Error("tracker init frame unavailable", slog.Int("frame", index), slog.Any("error", err))
		return false
	}
	defer f.Close()

	h, err := c.factory(c.kind)
	if err != nil {
		c.logger.Error("tracker construction failed", slog.Any("error", err))
		return false
	}
	if !h.Init(f, region) {
		h.Close()
		c.logger.Warn("tracker init rejected", slog.Int("frame", index), slog.String("region", region.String()))
		return false
	}
	c.handle = h
	c.initialized = true
	c.boundIndex = index
	c.boundRect = region
	c.logger.Debug("tracker enabled",
		slog.String("kind", c.kind.String()),
		slog.Int("frame", index),
		slog.String("region", region.String()),
	)
	return true
}

// Disable tears down the tracker, keeping the last bound region untouched so
// it can still be shown.
func (c *Controller) Disable() {
	if c.initialized {
		c.logger.Debug("tracker disabled", slog.Int("frame", c.boundIndex))
	}
	c.teardown()
}

func (c *Controller) teardown() {
	if c.handle != nil {
		c.handle.Close()
		c.handle = nil
	}
	c.initialized = false
}

// AdvanceBy walks the tracker delta frames from its bound frame, updating on
// every intermediate frame. Indices wrap around the sequence, matching the
// wraparound navigation of the viewer.
//
// The walk is atomic: the bound frame and region move only if every step
// succeeds. On any failure (an unreadable frame, a lost target, or context
// cancellation) the tracker is disabled, the previous bound region is kept
// for display, and the registered OnFail callback fires.
func (c *Controller) AdvanceBy(ctx context.Context, delta int) (image.Rectangle, bool) {
	if !c.initialized || delta == 0 {
		return c.boundRect, false
	}
	n := c.seq.Len()
	if n == 0 {
		return c.boundRect, false
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}

	rect := c.boundRect
	idx := c.boundIndex
	for i := 0; i < delta; i++ {
		if err := ctx.Err(); err != nil {
			c.fail("tracker walk cancelled", idx, err)
			return c.boundRect, false
		}
		idx = mod(idx+step, n)
		f, err := c.seq.Frame(idx)
		if err != nil {
			c.fail("tracker walk frame unavailable", idx, err)
			return c.boundRect, false
		}
		r, ok := c.handle.Update(f)
		f.Close()
		if !ok {
			c.fail("tracker lost target", idx, nil)
			return c.boundRect, false
		}
		rect = r
	}
	c.boundIndex = idx
	c.boundRect = rect
	return rect, true
}

func (c *Controller) fail(msg string, frame int, err error) {
	attrs := []any{slog.Int("frame", frame)}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	c.logger.Warn(msg, attrs...)
	c.teardown()
	if c.onFail != nil {
		c.onFail()
	}
}

// mod is the mathematical modulus, non-negative for negative a.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
