package presenter

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"testing"

	"depthmark/domain/depth"
	"depthmark/ui/model"
)

var (
	_ GridSource   = (*mockGridSource)(nil)
	_ RegionSource = (*mockRegionSource)(nil)
	_ DepthView    = (*mockDepthView)(nil)
)

type mockGridSource struct {
	grids map[int]*depth.Grid
	errAt map[int]bool
	loads int
}

func (m *mockGridSource) DepthGrid(i int) (*depth.Grid, error) {
	m.loads++
	if m.errAt[i] {
		return nil, fmt.Errorf("grid %d unreadable", i)
	}
	return m.grids[i], nil
}

type mockRegionSource struct {
	index int
	aoi   image.Rectangle
	has   bool
}

func (m *mockRegionSource) Index() int                   { return m.index }
func (m *mockRegionSource) AOI() (image.Rectangle, bool) { return m.aoi, m.has }

type mockDepthView struct {
	panels      int
	unavailable int
	stats       depth.Stats
	statsOK     bool
}

func (m *mockDepthView) UpdateDepthPanel(png []byte) { m.panels++ }
func (m *mockDepthView) DepthUnavailable()           { m.unavailable++ }
func (m *mockDepthView) SetStats(s depth.Stats, ok bool) {
	m.stats, m.statsOK = s, ok
}

func flatGrid(w, h int, v float32) *depth.Grid {
	g := &depth.Grid{W: w, H: h, Values: make([]float32, w*h)}
	for i := range g.Values {
		g.Values[i] = v
	}
	return g
}

func newDepthFixture(src *mockGridSource, nav *mockRegionSource) (*DepthPresenter, *mockDepthView) {
	view := &mockDepthView{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	band := func() depth.Band { return depth.Band{Min: 1, Max: 20} }
	return NewDepthPresenter(src, nav, band, model.NewStatsModel(), view, logger), view
}

func TestDepthPresenter_StatsForRegion(t *testing.T) {
	src := &mockGridSource{grids: map[int]*depth.Grid{0: flatGrid(20, 20, 3)}}
	nav := &mockRegionSource{aoi: image.Rect(2, 2, 8, 8), has: true}
	p, view := newDepthFixture(src, nav)

	p.Refresh()
	if view.panels != 1 {
		t.Fatalf("expected one panel render, got %d", view.panels)
	}
	if !view.statsOK || view.stats.Mean != 3 || view.stats.Count != 36 {
		t.Fatalf("unexpected stats: %+v ok=%v", view.stats, view.statsOK)
	}
}

func TestDepthPresenter_NoRegionClearsStats(t *testing.T) {
	src := &mockGridSource{grids: map[int]*depth.Grid{0: flatGrid(20, 20, 3)}}
	nav := &mockRegionSource{}
	p, view := newDepthFixture(src, nav)

	p.Refresh()
	if view.statsOK {
		t.Fatal("no region must mean no statistics")
	}
	if view.panels != 1 {
		t.Fatal("the panel renders even without a region")
	}
}

func TestDepthPresenter_MissingGrid(t *testing.T) {
	src := &mockGridSource{grids: map[int]*depth.Grid{}}
	nav := &mockRegionSource{aoi: image.Rect(0, 0, 5, 5), has: true}
	p, view := newDepthFixture(src, nav)

	p.Refresh()
	if view.unavailable != 1 {
		t.Fatal("a frame without depth must show as unavailable")
	}
	if view.panels != 0 || view.statsOK {
		t.Fatalf("no panel or stats expected: panels=%d ok=%v", view.panels, view.statsOK)
	}
}

func TestDepthPresenter_LoadErrorFallsBackToUnavailable(t *testing.T) {
	src := &mockGridSource{errAt: map[int]bool{0: true}}
	nav := &mockRegionSource{}
	p, view := newDepthFixture(src, nav)

	p.Refresh()
	if view.unavailable != 1 {
		t.Fatal("an unreadable grid must show as unavailable")
	}
}

func TestDepthPresenter_CachesPerFrame(t *testing.T) {
	src := &mockGridSource{grids: map[int]*depth.Grid{
		0: flatGrid(10, 10, 2),
		1: flatGrid(10, 10, 4),
	}}
	nav := &mockRegionSource{aoi: image.Rect(0, 0, 5, 5), has: true}
	p, view := newDepthFixture(src, nav)

	p.Refresh()
	p.Refresh() // same frame, cache hit
	if src.loads != 1 {
		t.Fatalf("expected one load for repeated refreshes, got %d", src.loads)
	}

	nav.index = 1
	p.Refresh()
	if src.loads != 2 {
		t.Fatalf("expected a reload after a frame step, got %d loads", src.loads)
	}
	if view.stats.Mean != 4 {
		t.Fatalf("expected stats from the new frame, got %+v", view.stats)
	}

	p.Invalidate()
	p.Refresh()
	if src.loads != 3 {
		t.Fatalf("expected a reload after invalidation, got %d loads", src.loads)
	}
}
