package presenter

import (
	"context"
)

// Stepper narrows what the presenter needs from the navigation layer.
type Stepper interface {
	Step(ctx context.Context, delta int) int
	Index() int
	Len() int
}

// FrameNumberer maps a sequence index to the recorded frame number.
type FrameNumberer interface {
	Number(i int) int
}

// NavView displays the current position in the sequence.
type NavView interface {
	SetFramePosition(index, number, total int)
}

// FrameChanged is invoked after every successful step so dependent surfaces
// (canvas, depth panel, statistics) can reload the new frame.
type FrameChanged func()

// NavPresenter moves through the sequence in single steps and jumps of five,
// wrapping at both ends.
type NavPresenter struct {
	nav     Stepper
	numbers FrameNumberer
	view    NavView
	changed FrameChanged
}

func NewNavPresenter(nav Stepper, numbers FrameNumberer, view NavView, changed FrameChanged) *NavPresenter {
	return &NavPresenter{nav: nav, numbers: numbers, view: view, changed: changed}
}

// Next moves one frame forward.
func (p *NavPresenter) Next(ctx context.Context) { p.step(ctx, 1) }

// Prev moves one frame back.
func (p *NavPresenter) Prev(ctx context.Context) { p.step(ctx, -1) }

// JumpForward moves five frames forward.
func (p *NavPresenter) JumpForward(ctx context.Context) { p.step(ctx, 5) }

// JumpBack moves five frames back.
func (p *NavPresenter) JumpBack(ctx context.Context) { p.step(ctx, -5) }

func (p *NavPresenter) step(ctx context.Context, delta int) {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	p.nav.Step(ctx, delta)
	p.Refresh()
	if p.changed != nil {
		p.changed()
	}
}

// Refresh pushes the current position to the view.
func (p *NavPresenter) Refresh() {
	if p == nil || p.nav == nil || p.view == nil {
		return
	}
	i := p.nav.Index()
	number := i
	if p.numbers != nil {
		number = p.numbers.Number(i)
	}
	p.view.SetFramePosition(i, number, p.nav.Len())
}
