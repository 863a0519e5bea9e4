package tracking

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"
)

// NewHandle is the production Factory. CSRT is the most accurate of the
// three and the default; MIL is the cheapest.
func NewHandle(kind Kind) (Handle, error) {
	var t gocv.Tracker
	switch kind {
	case KindCSRT:
		t = contrib.NewTrackerCSRT()
	case KindKCF:
		t = contrib.NewTrackerKCF()
	case KindMIL:
		t = gocv.NewTrackerMIL()
	default:
		return nil, fmt.Errorf("unsupported tracker kind %v", kind)
	}
	return &cvHandle{tracker: t}, nil
}

type cvHandle struct {
	tracker gocv.Tracker
}

func (h *cvHandle) Init(f Frame, region image.Rectangle) bool {
	mf, ok := f.(MatFrame)
	if !ok || mf.Mat().Empty() {
		return false
	}
	return h.tracker.Init(mf.Mat(), region)
}

func (h *cvHandle) Update(f Frame) (image.Rectangle, bool) {
	mf, ok := f.(MatFrame)
	if !ok || mf.Mat().Empty() {
		return image.Rectangle{}, false
	}
	return h.tracker.Update(mf.Mat())
}

func (h *cvHandle) Close() error {
	return h.tracker.Close()
}

var _ MatFrame = (*matFrame)(nil)

// matFrame adapts a bare gocv.Mat into a Frame.
type matFrame struct {
	mat gocv.Mat
}

// WrapMat wraps an existing matrix. The returned Frame takes ownership.
func WrapMat(m gocv.Mat) Frame {
	return &matFrame{mat: m}
}

func (f *matFrame) Empty() bool { return f.mat.Empty() }

func (f *matFrame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.mat.Cols(), f.mat.Rows())
}

func (f *matFrame) Mat() gocv.Mat { return f.mat }

func (f *matFrame) Close() error { return f.mat.Close() }
