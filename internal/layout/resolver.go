// Package layout derives insertion positions from pointer coordinates.
package layout

// Box is the vertical extent of one sibling in display order, relative to
// the container's content origin.
type Box struct {
	Top    float64
	Height float64
}

// Midpoint returns the vertical center of the box.
func (b Box) Midpoint() float64 {
	return b.Top + b.Height/2
}

// ResolveInsertionIndex returns the index at which a dragged element should
// be inserted among boxes, given the pointer's vertical coordinate relative
// to the container's content origin. boxes must be in display order and must
// not include the element being dragged.
//
// The first sibling whose midpoint lies below the pointer marks the slot;
// a pointer below every midpoint appends at the end. With no siblings the
// result is 0, and out-of-bounds coordinates clamp naturally.
func ResolveInsertionIndex(pointerY float64, boxes []Box) int {
	for i, b := range boxes {
		if pointerY < b.Midpoint() {
			return i
		}
	}
	return len(boxes)
}
