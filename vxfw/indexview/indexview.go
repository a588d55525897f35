// Package indexview provides vxfw widgets for scrubbing through section
// labels with the mouse. [IndexView] is the strip itself. [Overlay] places an
// IndexView on an edge of another widget and keeps tracking drags that leave
// the strip.
package indexview

import (
	"errors"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/rivo/uniseg"

	"github.com/vxindex/vxindex/indexbar"
)

// ErrUnbounded is returned when an IndexView is drawn without a maximum size
var ErrUnbounded = errors.New("indexview: unbounded constraints")

// IndexView is a strip of labels. A left button press on the strip selects
// the label under the mouse and dragging moves the selection. The strip is
// vertical when it is drawn narrower than tall, horizontal otherwise.
type IndexView struct {
	Style Style
	// Origin is the screen position of the view's top left cell. Mouse events
	// arrive in screen coordinates, so whoever places the view sets this to
	// where it was placed. An [Overlay] sets it on each draw
	Origin vxfw.RelativePoint

	strip   *indexbar.Strip
	tracker *indexbar.Tracker
}

// New returns an IndexView showing labels and notifying d
func New(labels []string, d indexbar.Delegate) *IndexView {
	strip := indexbar.NewStrip(indexbar.Rect{}, labels)
	return &IndexView{
		Style:   DefaultStyle(),
		strip:   strip,
		tracker: indexbar.NewTracker(strip, d),
	}
}

// SetLabels replaces the labels and reloads the strip. A selection past the
// end of the new labels is dropped
func (v *IndexView) SetLabels(labels []string) {
	v.strip.SetLabels(labels)
	v.tracker.Revalidate()
}

// SetDelegate replaces the delegate notified of selections
func (v *IndexView) SetDelegate(d indexbar.Delegate) {
	v.tracker.SetDelegate(d)
}

// Tracker returns the tracker passed to the delegate's handlers
func (v *IndexView) Tracker() *indexbar.Tracker {
	return v.tracker
}

// Labels returns the labels
func (v *IndexView) Labels() []string {
	return v.strip.Labels()
}

// CurrentIndex returns the last selected index, or -1
func (v *IndexView) CurrentIndex() int {
	return v.tracker.Index()
}

// CurrentTitle returns the label at CurrentIndex, or ""
func (v *IndexView) CurrentTitle() string {
	return v.tracker.Title()
}

// Orientation returns the orientation from the last draw
func (v *IndexView) Orientation() indexbar.Orientation {
	return v.strip.Orientation()
}

// Pressed reports whether a gesture is in progress
func (v *IndexView) Pressed() bool {
	return v.tracker.Pressed()
}

// Thickness is the number of cells the widest label needs. A vertical strip
// should be at least this wide
func (v *IndexView) Thickness() uint16 {
	var w int
	for _, l := range v.strip.Labels() {
		if lw := uniseg.StringWidth(l); lw > w {
			w = lw
		}
	}
	if w < 1 {
		w = 1
	}
	return uint16(w)
}

func (v *IndexView) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Mouse:
		ev.Col -= v.Origin.Col
		ev.Row -= v.Origin.Row
		return v.track(ev), nil
	case vxfw.MouseLeave:
		return v.cancel(), nil
	case vaxis.FocusOut:
		return v.cancel(), nil
	}
	return nil, nil
}

// track drives the tracker from a mouse event in view-local coordinates. It
// returns a redraw command when the event was used
func (v *IndexView) track(ev vaxis.Mouse) vxfw.Command {
	p := indexbar.CellPoint(ev.Col, ev.Row)
	pressed := v.tracker.Pressed()
	switch ev.EventType {
	case vaxis.EventPress:
		if ev.Button != vaxis.MouseLeftButton {
			return nil
		}
		v.tracker.Begin(p)
	case vaxis.EventMotion:
		if !pressed {
			return nil
		}
		if ev.Button == vaxis.MouseNoButton {
			// We missed the release
			v.tracker.End(p)
			break
		}
		v.tracker.Move(p)
	case vaxis.EventRelease:
		if !pressed {
			return nil
		}
		v.tracker.End(p)
	default:
		return nil
	}
	if !pressed && !v.tracker.Pressed() {
		return nil
	}
	return vxfw.ConsumeAndRedraw()
}

func (v *IndexView) cancel() vxfw.Command {
	if !v.tracker.Pressed() {
		return nil
	}
	v.tracker.Cancel()
	return vxfw.RedrawCmd{}
}

func (v *IndexView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		return vxfw.Surface{}, ErrUnbounded
	}
	w, h := ctx.Max.Width, ctx.Max.Height

	bounds := indexbar.Rect{Width: float64(w), Height: float64(h)}
	if v.strip.Bounds() != bounds {
		v.strip.Layout(bounds)
	}

	characters := ctx.Characters
	if characters == nil {
		characters = vaxis.Characters
	}

	pressed := v.tracker.Pressed()
	var fill vaxis.Color
	if pressed {
		fill = v.Style.OverlayFill()
	}

	s := vxfw.NewSurface(w, h, v)
	blank := v.Style.Label
	blank.Background = fill
	for i := range s.Buffer {
		s.Buffer[i] = vaxis.Cell{
			Character: vaxis.Character{Grapheme: " ", Width: 1},
			Style:     blank,
		}
	}

	current := v.tracker.Index()
	// next is the first free cell along the primary axis. Labels which
	// would land on a cell already drawn are skipped when there are more
	// labels than cells
	next := 0
	for i, slot := range v.strip.Slots() {
		label, _ := v.strip.LabelText(i)
		chars := characters(label)
		lw := 0
		for _, ch := range chars {
			lw += ch.Width
		}

		style := v.Style.Label
		if pressed && i == current {
			style = v.Style.Current
		}
		if style.Background == 0 {
			style.Background = fill
		}

		var col, row int
		switch v.strip.Orientation() {
		case indexbar.Vertical:
			row = int(slot.Y + slot.Height/2)
			if row < next {
				continue
			}
			next = row + 1
			col = (int(w) - lw) / 2
		default:
			col = int(slot.X+slot.Width/2) - lw/2
			if col < next {
				col = next
			}
			if col+lw > int(w) {
				continue
			}
			next = col + lw
			row = int(h) / 2
		}
		if col < 0 {
			col = 0
		}

		for _, ch := range chars {
			if col+ch.Width > int(w) {
				break
			}
			s.WriteCell(uint16(col), uint16(row), vaxis.Cell{
				Character: ch,
				Style:     style,
			})
			col += ch.Width
		}
	}
	return s, nil
}

// Verify we meet the Widget interface
var _ vxfw.Widget = &IndexView{}
