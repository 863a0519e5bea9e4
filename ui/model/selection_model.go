package model

import (
	"image"
)

// SelectionModel holds the committed annotation rectangle in frame
// coordinates. Zero value means no selection and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type SelectionModel struct {
	rect image.Rectangle
}

func NewSelectionModel() *SelectionModel { return &SelectionModel{} }

// SetRect stores the rectangle. An empty or inverted rect clears it.
func (m *SelectionModel) SetRect(r image.Rectangle) {
	if m == nil {
		return
	}
	if r.Empty() || r.Dx() <= 0 || r.Dy() <= 0 {
		m.rect = image.Rectangle{}
		return
	}
	m.rect = r
}

// Rect returns the committed rectangle (may be empty).
func (m *SelectionModel) Rect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.rect
}

// Has reports whether a selection is committed.
func (m *SelectionModel) Has() bool {
	return m != nil && !m.rect.Empty()
}
