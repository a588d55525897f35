package main

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"github.com/vxindex/vxindex/config"
	"github.com/vxindex/vxindex/indexbar"
	"github.com/vxindex/vxindex/log"
	"github.com/vxindex/vxindex/vxfw/indexview"
	"github.com/vxindex/vxindex/vxfw/sectiongrid"
)

// demo is the root widget: a section grid under an index overlay
type demo struct {
	grid    *sectiongrid.Grid
	index   *indexview.IndexView
	overlay *indexview.Overlay
}

func newDemo(cfg config.Config) *demo {
	d := &demo{
		grid: &sectiongrid.Grid{
			Sections:  sampleSections(cfg.Labels),
			CellWidth: cfg.CellWidth,
			Gap:       1,
			HeaderStyle: vaxis.Style{
				Attribute: vaxis.AttrBold | vaxis.AttrReverse,
			},
		},
	}
	d.index = indexview.New(d.grid.Titles(), indexbar.Delegate{
		PressedOnIndex: func(_ *indexbar.Tracker, index int, title string) {
			log.Debug("demo: scrolling to section %d (%s)", index, title)
			d.grid.ScrollToSection(index)
		},
		LiftedFromIndex: func(_ *indexbar.Tracker, index int) {
			log.Debug("demo: lifted at section %d", index)
		},
	})
	d.index.Style = cfg.Style
	d.overlay = &indexview.Overlay{
		Content: d.grid,
		Index:   d.index,
		Edge:    cfg.Edge,
		Inset:   cfg.Inset,
	}
	return d
}

// sampleSections builds a section per label with a varying number of items
func sampleSections(labels []string) []sectiongrid.Section {
	sections := make([]sectiongrid.Section, 0, len(labels))
	for i, label := range labels {
		n := 3 + (i*7)%11
		items := make([]string, 0, n)
		for j := 0; j < n; j += 1 {
			items = append(items, fmt.Sprintf("%s item %d", label, j+1))
		}
		sections = append(sections, sectiongrid.Section{
			Title: label,
			Items: items,
		})
	}
	return sections
}

func (d *demo) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		if ev.Matches('c', vaxis.ModCtrl) || ev.Matches('q') {
			return vxfw.QuitCmd{}, nil
		}
		if ev.Matches('l', vaxis.ModCtrl) {
			return []vxfw.Command{vxfw.DebugCmd{}, vxfw.RedrawCmd{}}, nil
		}
	}
	return nil, nil
}

func (d *demo) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	switch ev.(type) {
	case vxfw.Init:
		return vxfw.FocusWidgetCmd(d.grid), nil
	}
	return nil, nil
}

func (d *demo) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	// The root is drawn at the screen origin and the overlay at the root's
	d.overlay.Origin = vxfw.RelativePoint{}
	s, err := d.overlay.Draw(ctx)
	if err != nil {
		return vxfw.Surface{}, err
	}

	root := vxfw.NewSurface(s.Size.Width, s.Size.Height, d)
	root.AddChild(d.overlay.Origin.Col, d.overlay.Origin.Row, s)

	return root, nil
}
