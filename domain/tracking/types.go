package tracking

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Kind selects the visual tracker algorithm.
type Kind int

const (
	KindCSRT Kind = iota
	KindKCF
	KindMIL
)

func (k Kind) String() string {
	switch k {
	case KindKCF:
		return "KCF"
	case KindMIL:
		return "MIL"
	default:
		return "CSRT"
	}
}

// ParseKind maps a config value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "CSRT":
		return KindCSRT, nil
	case "KCF":
		return KindKCF, nil
	case "MIL":
		return KindMIL, nil
	}
	return KindCSRT, fmt.Errorf("unknown tracker kind %q", s)
}

// Frame is one image handed to a tracker. Implementations own pixel storage;
// callers release it with Close when done.
type Frame interface {
	Empty() bool
	Bounds() image.Rectangle
	Close() error
}

// MatFrame is a Frame backed by an OpenCV matrix.
type MatFrame interface {
	Frame
	Mat() gocv.Mat
}

// Handle is one live tracker instance bound to a target.
type Handle interface {
	// Init binds the tracker to the region in the given frame. A false
	// return means the tracker rejected the region.
	Init(f Frame, region image.Rectangle) bool
	// Update locates the target in the next frame.
	Update(f Frame) (image.Rectangle, bool)
	Close() error
}

// Sequence is an ordered, random-access source of frames.
type Sequence interface {
	Len() int
	Frame(i int) (Frame, error)
}

// Factory builds a fresh tracker of the given kind. A new instance is
// required for every re-initialization; trackers cannot be rebound.
type Factory func(Kind) (Handle, error)
