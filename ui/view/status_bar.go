package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar displays frame position, transient status messages and session
// statistics along the bottom of the window.
type StatusBar interface {
	SetFramePosition(index, number, total int)
	SetStatus(text string)
	SetSession(engaged, total time.Duration, commits int)
}

type statusBar struct {
	frameLbl   *LabelWidget
	statusLbl  *LabelWidget
	sessionLbl *LabelWidget
}

// NewStatusBar creates the three status labels in a single grid row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		frameLbl:   Label(Txt("frame - / -"), Width(20)),
		statusLbl:  Label(Txt("ready"), Borderwidth(1), Relief("ridge")),
		sessionLbl: Label(Txt("tracked 00:00 | total 00:00 | boxes 0"), Width(36)),
	}
	Grid(s.frameLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.2m"))
	Grid(s.statusLbl, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	Grid(s.sessionLbl, Row(row), Column(2), Sticky("e"), Padx("0.4m"), Pady("0.2m"))
	return s
}

func (s *statusBar) SetFramePosition(index, number, total int) {
	if s == nil || s.frameLbl == nil {
		return
	}
	s.frameLbl.Configure(Txt(fmt.Sprintf("frame %06d (%d / %d)", number, index+1, total)))
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

func (s *statusBar) SetSession(engaged, total time.Duration, commits int) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	fmtDur := func(d time.Duration) string {
		sec := int(d.Seconds())
		return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
	}
	s.sessionLbl.Configure(Txt(fmt.Sprintf(
		"tracked %s | total %s | boxes %d", fmtDur(engaged), fmtDur(total), commits,
	)))
}
