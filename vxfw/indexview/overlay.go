package indexview

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Edge is the side of an [Overlay] the index strip is drawn on
type Edge uint8

const (
	EdgeRight Edge = iota
	EdgeLeft
	EdgeBottom
	EdgeTop
)

// Overlay draws Content over its whole area and Index on top of it along
// Edge. Mouse events anywhere in the overlay are captured while a gesture is
// in progress, so a drag can leave the strip without ending the gesture and
// a release anywhere ends it. The gesture is cancelled when the mouse leaves
// the overlay, not when it leaves the strip.
type Overlay struct {
	Content vxfw.Widget
	Index   *IndexView
	Edge    Edge
	// Inset shrinks Content so the strip does not cover it
	Inset bool
	// Origin is the screen position of the overlay's top left cell, set by
	// whoever places the overlay
	Origin vxfw.RelativePoint

	// origin and size of Index in the last draw
	origin vxfw.RelativePoint
	size   vxfw.Size
}

// NewOverlay returns an Overlay with index on the right edge of content
func NewOverlay(content vxfw.Widget, index *IndexView) *Overlay {
	return &Overlay{
		Content: content,
		Index:   index,
		Edge:    EdgeRight,
	}
}

func (o *Overlay) stripContains(col int, row int) bool {
	return col >= o.origin.Col &&
		col < o.origin.Col+int(o.size.Width) &&
		row >= o.origin.Row &&
		row < o.origin.Row+int(o.size.Height)
}

// CaptureEvent routes mouse events to the index strip before Content sees
// them: presses on the strip, and everything while a gesture is in progress
func (o *Overlay) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	mouse, ok := ev.(vaxis.Mouse)
	if !ok || o.Index == nil {
		return nil, nil
	}
	// Screen to overlay coordinates
	mouse.Col -= o.Origin.Col
	mouse.Row -= o.Origin.Row
	if !o.Index.Pressed() && !o.stripContains(mouse.Col, mouse.Row) {
		return nil, nil
	}
	mouse.Col -= o.origin.Col
	mouse.Row -= o.origin.Row
	return o.Index.track(mouse), nil
}

func (o *Overlay) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if o.Index == nil {
		return nil, nil
	}
	switch ev.(type) {
	case vxfw.MouseLeave:
		if ph != vxfw.TargetPhase {
			return nil, nil
		}
		return o.Index.cancel(), nil
	}
	return nil, nil
}

func (o *Overlay) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		return vxfw.Surface{}, ErrUnbounded
	}
	w, h := ctx.Max.Width, ctx.Max.Height
	s := vxfw.NewSurface(w, h, o)
	if o.Index == nil {
		return o.drawContent(ctx, s, vxfw.RelativePoint{}, ctx.Max)
	}

	// Lay out the strip along the edge
	var thick uint16
	switch o.Edge {
	case EdgeLeft, EdgeRight:
		thick = min(o.Index.Thickness(), w)
		o.size = vxfw.Size{Width: thick, Height: h}
	default:
		thick = min(1, h)
		o.size = vxfw.Size{Width: w, Height: thick}
	}
	o.origin = vxfw.RelativePoint{}
	contentOrigin := vxfw.RelativePoint{}
	contentSize := ctx.Max
	switch o.Edge {
	case EdgeRight:
		o.origin.Col = int(w - thick)
		if o.Inset {
			contentSize.Width -= thick
		}
	case EdgeLeft:
		if o.Inset {
			contentOrigin.Col = int(thick)
			contentSize.Width -= thick
		}
	case EdgeBottom:
		o.origin.Row = int(h - thick)
		if o.Inset {
			contentSize.Height -= thick
		}
	case EdgeTop:
		if o.Inset {
			contentOrigin.Row = int(thick)
			contentSize.Height -= thick
		}
	}

	o.Index.Origin = vxfw.RelativePoint{
		Col: o.Origin.Col + o.origin.Col,
		Row: o.Origin.Row + o.origin.Row,
	}

	s, err := o.drawContent(ctx, s, contentOrigin, contentSize)
	if err != nil {
		return s, err
	}

	stripS, err := o.Index.Draw(vxfw.DrawContext{
		Min:        o.size,
		Max:        o.size,
		Characters: ctx.Characters,
	})
	if err != nil {
		return s, err
	}
	stripS.Widget = overlayStrip{o: o}
	ss := vxfw.NewSubSurface(o.origin.Col, o.origin.Row, stripS)
	ss.ZIndex = 1
	s.Children = append(s.Children, ss)
	return s, nil
}

func (o *Overlay) drawContent(ctx vxfw.DrawContext, s vxfw.Surface, origin vxfw.RelativePoint, size vxfw.Size) (vxfw.Surface, error) {
	if o.Content == nil || size.Width == 0 || size.Height == 0 {
		return s, nil
	}
	chS, err := o.Content.Draw(vxfw.DrawContext{
		Max:        size,
		Characters: ctx.Characters,
	})
	if err != nil {
		return s, err
	}
	s.AddChild(origin.Col, origin.Row, chS)
	return s, nil
}

// overlayStrip stands in for Index in the overlay's surface tree. The strip
// leaving the mouse is not the end of a gesture in an overlay, so MouseLeave
// stops here; the rest goes to Index
type overlayStrip struct {
	o *Overlay
}

func (st overlayStrip) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if _, ok := ev.(vxfw.MouseLeave); ok {
		return nil, nil
	}
	return st.o.Index.HandleEvent(ev, ph)
}

func (st overlayStrip) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return st.o.Index.Draw(ctx)
}

// Verify we meet the Widget interface
var (
	_ vxfw.Widget        = &Overlay{}
	_ vxfw.EventCapturer = &Overlay{}
	_ vxfw.Widget        = overlayStrip{}
)
