package indexbar

import "github.com/vxindex/vxindex/log"

// Delegate receives selection notifications from a [Tracker]. Both handlers
// are optional; a nil handler is skipped. Each handler is passed the Tracker
// that fired, so one Delegate can serve several strips
type Delegate struct {
	// PressedOnIndex is called when a press lands on the strip, and each time
	// a drag moves the selection to a different label
	PressedOnIndex func(t *Tracker, index int, title string)
	// LiftedFromIndex is called once when a gesture ends, with the last
	// selected index
	LiftedFromIndex func(t *Tracker, index int)
}

func (d Delegate) pressed(t *Tracker, index int, title string) {
	if d.PressedOnIndex == nil {
		return
	}
	d.PressedOnIndex(t, index, title)
}

func (d Delegate) lifted(t *Tracker, index int) {
	if d.LiftedFromIndex == nil {
		return
	}
	d.LiftedFromIndex(t, index)
}

// Selection is a snapshot of the tracker state
type Selection struct {
	// Index of the selected label, -1 when nothing has been selected
	Index int
	// Pressed is true while a gesture is in progress
	Pressed bool
	// Point is the last point delivered to the tracker
	Point Point
}

// Tracker is the press/drag/release state machine over a [Strip]. It is
// Idle until a press lands on the strip, Pressed until the gesture ends, and
// only emits when the selected index changes.
//
// The selected index is kept after release so hosts can read the last
// selection. Tracker is not safe for concurrent use: all calls are expected
// from the UI event loop, one gesture at a time.
type Tracker struct {
	strip    *Strip
	delegate Delegate
	sel      Selection
}

// NewTracker returns an idle Tracker over strip
func NewTracker(strip *Strip, d Delegate) *Tracker {
	return &Tracker{
		strip:    strip,
		delegate: d,
		sel:      Selection{Index: -1},
	}
}

// SetDelegate replaces the delegate
func (t *Tracker) SetDelegate(d Delegate) {
	t.delegate = d
}

// Begin starts a gesture at p. A press outside the strip is ignored. A press
// while a gesture is already in progress is handled as a move
func (t *Tracker) Begin(p Point) {
	if t.sel.Pressed {
		t.Move(p)
		return
	}
	if !t.strip.Contains(p) {
		return
	}
	i, ok := t.strip.IndexAt(p)
	if !ok {
		return
	}
	t.sel.Pressed = true
	t.sel.Point = p
	t.choose(i)
}

// Move updates a gesture in progress. Dragging off the strip keeps the last
// selection rather than clearing it
func (t *Tracker) Move(p Point) {
	if !t.sel.Pressed {
		return
	}
	t.sel.Point = p
	i, ok := t.strip.IndexAt(p)
	if !ok || i == t.sel.Index {
		return
	}
	t.choose(i)
}

// End finishes a gesture at p. It is a no-op when no gesture is in progress
func (t *Tracker) End(p Point) {
	if !t.sel.Pressed {
		return
	}
	t.sel.Point = p
	t.lift()
}

// Cancel finishes a gesture without a final position, as when the pointer
// leaves the host or focus is lost
func (t *Tracker) Cancel() {
	if !t.sel.Pressed {
		return
	}
	t.lift()
}

func (t *Tracker) choose(i int) {
	t.sel.Index = i
	title, _ := t.strip.LabelText(i)
	log.Debug("indexbar: pressed on %d (%q)", i, title)
	t.delegate.pressed(t, i, title)
}

func (t *Tracker) lift() {
	t.sel.Pressed = false
	log.Debug("indexbar: lifted from %d", t.sel.Index)
	t.delegate.lifted(t, t.sel.Index)
}

// Revalidate drops a selection which no longer points at a label, as after
// the strip's labels were replaced with a shorter set. A gesture in progress
// on a dropped label ends without notification
func (t *Tracker) Revalidate() {
	if t.sel.Index < t.strip.Len() {
		return
	}
	t.Reset()
}

// Reset returns the tracker to idle with no selection, without notifying the
// delegate
func (t *Tracker) Reset() {
	t.sel = Selection{Index: -1}
}

// Selection returns the current state
func (t *Tracker) Selection() Selection {
	sel := t.sel
	if sel.Index >= t.strip.Len() {
		sel.Index = -1
	}
	return sel
}

// Index returns the selected index, or -1
func (t *Tracker) Index() int {
	return t.Selection().Index
}

// Title returns the label of the selected index, or "" when there is none
func (t *Tracker) Title() string {
	title, err := t.strip.LabelText(t.Index())
	if err != nil {
		return ""
	}
	return title
}

// Pressed reports whether a gesture is in progress
func (t *Tracker) Pressed() bool {
	return t.sel.Pressed
}
