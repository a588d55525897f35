// Package sectiongrid is a scrolling grid of cells grouped in titled
// sections. It is the host view an index strip scrubs through: the strip
// reports a section index and the grid scrolls that section to the top.
package sectiongrid

import (
	"errors"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/mattn/go-runewidth"
)

// ErrUnbounded is returned when a Grid is drawn without a maximum size
var ErrUnbounded = errors.New("sectiongrid: unbounded constraints")

const (
	defaultCellWidth = 12
	wheelRows        = 3
)

// Section is a titled group of cells
type Section struct {
	Title string
	Items []string
}

// Grid lays each section out as a header row followed by rows of cells. The
// number of columns is as many cells of CellWidth as fit in the width
type Grid struct {
	Sections []Section
	// Width of each cell, defaults to 12
	CellWidth int
	// Columns between cells
	Gap int

	HeaderStyle vaxis.Style
	CellStyle   vaxis.Style

	// DisableEventHandlers prevents the widget from handling key or mouse
	// events. Set this to true to use custom event handlers
	DisableEventHandlers bool

	scroll scroll
	// rows from the last draw
	rows []row
}

// scroll state
type scroll struct {
	// first visible row
	top int
	// pending is the pending scroll amount, in rows
	pending int
	// jump is a section to bring to the top on the next draw, when jumpSet
	// is true. Rows depend on the width, so jumps are resolved while drawing
	jump    int
	jumpSet bool
}

// row is one line of the grid
type row struct {
	section int
	header  bool
	// first item index of a cell row
	first int
}

// Titles returns the section titles in order, suitable as index labels
func (g *Grid) Titles() []string {
	titles := make([]string, 0, len(g.Sections))
	for _, s := range g.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

// ScrollToSection scrolls so that the header of section i is the top row, or
// as close as the content allows. i is clamped to the sections
func (g *Grid) ScrollToSection(i int) {
	g.scroll.jump = i
	g.scroll.jumpSet = true
	g.scroll.pending = 0
}

// Scroll sets a pending scroll amount, in rows. Positive numbers scroll down
func (g *Grid) Scroll(rows int) {
	g.scroll.pending += rows
}

// Top returns the first visible row of the last draw
func (g *Grid) Top() int {
	return g.scroll.top
}

// SectionAtTop returns the section of the first visible row of the last
// draw, or -1 when the grid is empty
func (g *Grid) SectionAtTop() int {
	if g.scroll.top >= len(g.rows) {
		return -1
	}
	return g.rows[g.scroll.top].section
}

// HeaderRow returns the row of the header of section i from the last draw,
// or -1
func (g *Grid) HeaderRow(i int) int {
	for n, r := range g.rows {
		if r.header && r.section == i {
			return n
		}
	}
	return -1
}

func (g *Grid) cellWidth() int {
	if g.CellWidth <= 0 {
		return defaultCellWidth
	}
	return g.CellWidth
}

// columns returns how many cells fit in width
func (g *Grid) columns(width int) int {
	cols := (width + g.Gap) / (g.cellWidth() + g.Gap)
	if cols < 1 {
		return 1
	}
	return cols
}

func (g *Grid) layout(cols int) []row {
	rows := []row{}
	for i, s := range g.Sections {
		rows = append(rows, row{section: i, header: true})
		for first := 0; first < len(s.Items); first += cols {
			rows = append(rows, row{section: i, first: first})
		}
	}
	return rows
}

func (g *Grid) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	if g.DisableEventHandlers {
		return nil, nil
	}

	// We capture key events
	switch ev := ev.(type) {
	case vaxis.Key:
		if ev.EventType == vaxis.EventRelease {
			return nil, nil
		}
		if ev.Matches('j') || ev.Matches(vaxis.KeyDown) {
			g.Scroll(1)
			return vxfw.ConsumeAndRedraw(), nil
		}
		if ev.Matches('k') || ev.Matches(vaxis.KeyUp) {
			g.Scroll(-1)
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (g *Grid) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if g.DisableEventHandlers {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vaxis.Mouse:
		switch ev.Button {
		case vaxis.MouseWheelDown:
			g.Scroll(wheelRows)
			return vxfw.ConsumeAndRedraw(), nil
		case vaxis.MouseWheelUp:
			g.Scroll(-wheelRows)
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (g *Grid) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		return vxfw.Surface{}, ErrUnbounded
	}
	w, h := int(ctx.Max.Width), int(ctx.Max.Height)
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, g)

	cols := g.columns(w)
	g.rows = g.layout(cols)

	// Resolve a pending section jump before relative scrolling
	if g.scroll.jumpSet && len(g.Sections) > 0 {
		i := min(max(g.scroll.jump, 0), len(g.Sections)-1)
		if r := g.HeaderRow(i); r >= 0 {
			g.scroll.top = r
		}
	}
	g.scroll.jumpSet = false

	g.scroll.top += g.scroll.pending
	g.scroll.pending = 0

	// Clamp so the last row is at the bottom of the viewport at most
	maxTop := max(len(g.rows)-h, 0)
	g.scroll.top = min(max(g.scroll.top, 0), maxTop)

	characters := ctx.Characters
	if characters == nil {
		characters = vaxis.Characters
	}

	cw := g.cellWidth()
	for y := 0; y < h; y += 1 {
		n := g.scroll.top + y
		if n >= len(g.rows) {
			break
		}
		r := g.rows[n]
		sec := g.Sections[r.section]
		if r.header {
			title := runewidth.Truncate(sec.Title, w, "…")
			writeString(&s, characters, 0, y, w, title, g.HeaderStyle)
			continue
		}
		for c := 0; c < cols; c += 1 {
			i := r.first + c
			if i >= len(sec.Items) {
				break
			}
			col := c * (cw + g.Gap)
			item := runewidth.Truncate(sec.Items[i], cw, "…")
			writeString(&s, characters, col, y, cw, item, g.CellStyle)
		}
	}
	return s, nil
}

// writeString writes str at col, row, stopping at limit columns
func writeString(s *vxfw.Surface, characters func(string) []vaxis.Character, col int, row int, limit int, str string, style vaxis.Style) {
	end := col + limit
	for _, ch := range characters(str) {
		if col+ch.Width > end {
			return
		}
		s.WriteCell(uint16(col), uint16(row), vaxis.Cell{
			Character: ch,
			Style:     style,
		})
		col += ch.Width
	}
}

var _ vxfw.Widget = &Grid{}
