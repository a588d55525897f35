// Package indexbar maps pointer positions on a strip of section labels to
// label indices, and tracks press, drag and release gestures over the strip.
//
// The package has no terminal dependency. [Strip] owns labels and slot
// geometry, [Tracker] turns pointer events into delegate notifications. The
// vxfw widgets in vxfw/indexview render a Strip and feed a Tracker from
// vaxis mouse events.
package indexbar

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrOutOfRange is returned when a label is requested by an index outside of
// the label set
var ErrOutOfRange = errors.New("indexbar: index out of range")

// Strip is an ordered set of labels laid out along one axis of a rectangle.
// Each label owns an equal share of the primary axis, and together the shares
// cover the whole strip.
//
// The zero value is an empty strip with empty bounds, which never resolves a
// point.
type Strip struct {
	labels      []string
	bounds      Rect
	orientation Orientation

	// slots caches the slot geometry. It is nil when stale
	slots []Rect
}

// NewStrip returns a Strip with labels laid out in bounds
func NewStrip(bounds Rect, labels []string) *Strip {
	s := &Strip{}
	s.SetLabels(labels)
	s.Layout(bounds)
	return s
}

// SetLabels replaces the label set. Labels are used as given: duplicates and
// whitespace are kept. An empty set is allowed and resolves no points
func (s *Strip) SetLabels(labels []string) {
	s.labels = slices.Clone(labels)
	s.slots = nil
}

// Labels returns a copy of the label set
func (s *Strip) Labels() []string {
	return slices.Clone(s.labels)
}

// Len returns the number of labels
func (s *Strip) Len() int {
	return len(s.labels)
}

// Layout sets the bounds of the strip and derives the orientation from them:
// narrower than tall is Vertical, anything else is Horizontal
func (s *Strip) Layout(bounds Rect) {
	s.bounds = bounds
	s.orientation = orientationOf(bounds)
	s.slots = nil
}

// Bounds returns the bounds from the last call to Layout
func (s *Strip) Bounds() Rect {
	return s.bounds
}

// Orientation returns the orientation derived by the last call to Layout
func (s *Strip) Orientation() Orientation {
	return s.orientation
}

// Contains reports whether p is inside the bounds of the strip
func (s *Strip) Contains(p Point) bool {
	return s.bounds.Contains(p)
}

// IndexAt returns the index of the label whose slot contains p. The primary
// coordinate is clamped to the strip, so a point beyond either end resolves to
// the first or last label. Points outside the strip on the cross axis do not
// resolve, and neither does anything when the strip is empty.
func (s *Strip) IndexAt(p Point) (int, bool) {
	n := len(s.labels)
	if n == 0 {
		return -1, false
	}
	pos, origin, extent, cross, crossOrigin, crossExtent := axes(s.orientation, s.bounds, p)
	if !(extent > 0) || !(crossExtent > 0) {
		return -1, false
	}
	// Written so that NaN fails the check
	if !(cross >= crossOrigin && cross < crossOrigin+crossExtent) {
		return -1, false
	}
	if math.IsNaN(pos) {
		return -1, false
	}

	seg := math.Floor((pos - origin) * float64(n) / extent)
	switch {
	case seg < 0:
		return 0, true
	case seg > float64(n-1):
		return n - 1, true
	}
	return int(seg), true
}

// LabelText returns the label at index i
func (s *Strip) LabelText(i int) (string, error) {
	if i < 0 || i >= len(s.labels) {
		return "", fmt.Errorf("label %d of %d: %w", i, len(s.labels), ErrOutOfRange)
	}
	return s.labels[i], nil
}

// Slots returns the hit region of each label, in label order. The result is
// computed from the bounds and labels on first use after a change and cached
// until the next change
func (s *Strip) Slots() []Rect {
	if s.slots == nil {
		s.slots = slotsFor(s.bounds, s.orientation, len(s.labels))
	}
	return slices.Clone(s.slots)
}

// SlotAt returns the hit region of the label at index i
func (s *Strip) SlotAt(i int) (Rect, error) {
	if i < 0 || i >= len(s.labels) {
		return Rect{}, fmt.Errorf("slot %d of %d: %w", i, len(s.labels), ErrOutOfRange)
	}
	if s.slots == nil {
		s.slots = slotsFor(s.bounds, s.orientation, len(s.labels))
	}
	return s.slots[i], nil
}

// slotsFor partitions bounds into n slots along the primary axis of o. The
// boundaries are computed the same way IndexAt divides the axis, and the last
// slot always ends on the far edge of bounds
func slotsFor(bounds Rect, o Orientation, n int) []Rect {
	slots := make([]Rect, n)
	if n == 0 {
		return slots
	}
	_, origin, extent, _, _, _ := axes(o, bounds, Point{})
	edge := func(i int) float64 {
		if i == n {
			return origin + extent
		}
		return origin + extent*float64(i)/float64(n)
	}
	for i := range slots {
		start, end := edge(i), edge(i+1)
		switch o {
		case Vertical:
			slots[i] = Rect{
				X:      bounds.X,
				Y:      start,
				Width:  bounds.Width,
				Height: end - start,
			}
		default:
			slots[i] = Rect{
				X:      start,
				Y:      bounds.Y,
				Width:  end - start,
				Height: bounds.Height,
			}
		}
	}
	return slots
}
