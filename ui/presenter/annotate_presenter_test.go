package presenter

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"depthmark/domain/selection"
	"depthmark/domain/viewport"
)

var (
	_ RegionCommitter = (*mockCommitter)(nil)
	_ AnnotateView    = (*mockCanvas)(nil)
)

type mockCommitter struct {
	aoi     image.Rectangle
	hasAOI  bool
	commits []image.Rectangle
}

func (m *mockCommitter) Commit(r image.Rectangle) bool {
	m.commits = append(m.commits, r)
	m.aoi, m.hasAOI = r, true
	return true
}

func (m *mockCommitter) AOI() (image.Rectangle, bool) { return m.aoi, m.hasAOI }

type mockCanvas struct{ invalidated int }

func (m *mockCanvas) Invalidate() { m.invalidated++ }

func newAnnotateFixture() (*AnnotatePresenter, *mockCommitter, *mockCanvas, *viewport.State) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	vp := viewport.New(1280, 720, 1280, 720) // 1:1 mapping keeps expectations simple
	editor := selection.NewEditor(vp.DisplayArea(), 10, logger)
	nav := &mockCommitter{}
	canvas := &mockCanvas{}
	return NewAnnotatePresenter(editor, vp, nav, canvas, 1.2), nav, canvas, vp
}

func TestAnnotate_DragCommitsFrameCoordinates(t *testing.T) {
	p, nav, canvas, _ := newAnnotateFixture()

	p.PointerDown(image.Pt(100, 100))
	p.PointerMove(image.Pt(300, 250))
	p.PointerUp(image.Pt(300, 250))

	if len(nav.commits) != 1 {
		t.Fatalf("expected one commit, got %d", len(nav.commits))
	}
	// View and frame are identical at zoom 1 with matching sizes.
	if want := image.Rect(100, 100, 300, 250); nav.commits[0] != want {
		t.Fatalf("expected commit %v, got %v", want, nav.commits[0])
	}
	if canvas.invalidated == 0 {
		t.Fatal("expected redraws during the gesture")
	}
}

func TestAnnotate_StrayClickCommitsNothing(t *testing.T) {
	p, nav, _, _ := newAnnotateFixture()
	nav.Commit(image.Rect(50, 50, 150, 150))
	p.Refresh()
	commitsBefore := len(nav.commits)

	// Click-release far from the rectangle: the degenerate gesture reverts
	// and no commit happens, so a live tracker keeps its binding.
	p.PointerDown(image.Pt(600, 600))
	p.PointerUp(image.Pt(601, 601))

	if len(nav.commits) != commitsBefore {
		t.Fatalf("stray click must not commit, got %v", nav.commits[commitsBefore:])
	}
}

func TestAnnotate_WheelZoomReprojectsSelection(t *testing.T) {
	p, nav, _, vp := newAnnotateFixture()
	nav.Commit(image.Rect(400, 300, 600, 450))
	p.Refresh()

	p.Wheel(1, image.Pt(500, 375))
	if vp.Zoom() == 1 {
		t.Fatal("expected the wheel to zoom in")
	}
	// The committed region itself must be untouched by a view change.
	if aoi, _ := nav.AOI(); aoi != image.Rect(400, 300, 600, 450) {
		t.Fatalf("zooming must not alter the committed region, got %v", aoi)
	}
}

func TestAnnotate_PanFollowsPointer(t *testing.T) {
	p, _, _, vp := newAnnotateFixture()
	p.Wheel(1, image.Pt(640, 360))
	p.Wheel(1, image.Pt(640, 360))

	before := vp.Crop()
	p.PanStart(image.Pt(400, 400))
	p.PanMove(image.Pt(380, 400))
	p.PanEnd()
	after := vp.Crop()
	if after == before {
		t.Fatal("expected the crop to move while panning")
	}

	// Motion after release must be ignored.
	p.PanMove(image.Pt(200, 200))
	if vp.Crop() != after {
		t.Fatal("pan must stop on release")
	}
}

func TestAnnotate_ResetViewRestoresWholeFrame(t *testing.T) {
	p, _, _, vp := newAnnotateFixture()
	p.Wheel(1, image.Pt(100, 100))
	p.ResetView()
	if vp.Zoom() != 1 {
		t.Fatalf("expected zoom 1 after reset, got %v", vp.Zoom())
	}
}

func TestAnnotate_RefreshClearsEditorWhenRegionHidden(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	vp := viewport.New(1280, 720, 1280, 720)
	editor := selection.NewEditor(vp.DisplayArea(), 10, logger)
	nav := &mockCommitter{}
	p := NewAnnotatePresenter(editor, vp, nav, &mockCanvas{}, 1.2)

	nav.Commit(image.Rect(0, 0, 60, 60))
	p.Refresh()
	if _, ok := editor.Rect(); !ok {
		t.Fatal("visible region must appear in the editor")
	}

	// Zoom hard into the opposite corner until the region leaves the crop.
	for i := 0; i < 12; i++ {
		p.Wheel(1, image.Pt(1279, 719))
	}
	if crop := vp.Crop(); crop.Overlaps(image.Rect(0, 0, 60, 60)) {
		t.Skipf("crop %v still shows the region", crop)
	}
	if _, ok := editor.Rect(); ok {
		t.Fatal("editor must drop a rectangle that left the view")
	}
}
