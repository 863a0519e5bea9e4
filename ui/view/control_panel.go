package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"depthmark/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ControlPanel encapsulates the depth-band and tracker controls.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ControlPanel interface {
	Build(startRow, col int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type controlPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func()

	applyBtn    *ButtonWidget
	trackerSel  *TComboboxWidget
	trackerKind []string
	widgets     map[string]*TextWidget
}

// NewControlPanel creates the view bound to cfg. onApplied fires after a
// successful apply so dependent surfaces can pick up the new band and
// tracker kind.
func NewControlPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func()) ControlPanel {
	return &controlPanel{
		cfg:         cfg,
		cfgPath:     cfgPath,
		logger:      logger,
		onApplied:   onApplied,
		trackerKind: []string{"CSRT", "KCF", "MIL"},
		widgets:     make(map[string]*TextWidget),
	}
}

func (v *controlPanel) Build(startRow, col int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, Row(row), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("minDepth", "Min Depth (m)", fmt.Sprintf("%.2f", c.MinDepth))
	makeRow("maxDepth", "Max Depth (m)", fmt.Sprintf("%.2f", c.MaxDepth))

	lbl := Label(Txt("Tracker"), Anchor("w"))
	Grid(lbl, Row(row), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	v.trackerSel = TCombobox(Values(v.trackerKind), Width(8))
	Grid(v.trackerSel, Row(row), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	for i, k := range v.trackerKind {
		if k == c.Tracker {
			v.trackerSel.Current(i)
		}
	}
	row++

	v.applyBtn = Button(Txt("Apply"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(col), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *controlPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *controlPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.Join(w.Get("1.0", END), "")
}

func (v *controlPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v.text(w)), 64); err == nil {
			*dst = f
		}
	}
	assignFloat("minDepth", &cfg.MinDepth)
	assignFloat("maxDepth", &cfg.MaxDepth)
	if v.trackerSel != nil {
		if idx, err := strconv.Atoi(v.trackerSel.Current(nil)); err == nil && idx >= 0 && idx < len(v.trackerKind) {
			cfg.Tracker = v.trackerKind[idx]
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("control panel rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}
