package main

import (
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxindex/vxindex/config"
	"github.com/vxindex/vxindex/vxfw/indexview"
)

func testConfig() config.Config {
	return config.Config{
		Labels:    []string{"A", "B", "C"},
		Edge:      indexview.EdgeRight,
		Inset:     true,
		CellWidth: 10,
		Style:     indexview.DefaultStyle(),
	}
}

func TestSampleSections(t *testing.T) {
	sections := sampleSections([]string{"A", "B", "C"})
	require.Len(t, sections, 3)
	assert.Equal(t, "B", sections[1].Title)
	assert.Len(t, sections[0].Items, 3)
	assert.Len(t, sections[1].Items, 10)
	assert.Len(t, sections[2].Items, 6)
	assert.Equal(t, "B item 1", sections[1].Items[0])

	assert.Empty(t, sampleSections(nil))
}

func TestDemoScrollsToPressedSection(t *testing.T) {
	d := newDemo(testConfig())
	ctx := vxfw.DrawContext{
		Max:        vxfw.Size{Width: 21, Height: 10},
		Characters: vaxis.Characters,
	}
	s, err := d.Draw(ctx)
	require.NoError(t, err)
	require.Len(t, s.Children, 1)
	assert.Equal(t, 0, d.grid.Top())

	// The strip is the last column. Row 4 of 10 is in the second of three
	// slots
	press := vaxis.Mouse{Button: vaxis.MouseLeftButton, EventType: vaxis.EventPress, Col: 20, Row: 4}
	cmd, err := d.overlay.CaptureEvent(press)
	require.NoError(t, err)
	assert.Equal(t, vxfw.ConsumeAndRedraw(), cmd)
	assert.Equal(t, 1, d.index.CurrentIndex())

	_, err = d.Draw(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.grid.SectionAtTop())
	assert.Equal(t, d.grid.HeaderRow(1), d.grid.Top())
}

func TestDemoEvents(t *testing.T) {
	d := newDemo(testConfig())

	cmd, err := d.HandleEvent(vxfw.Init{}, vxfw.TargetPhase)
	require.NoError(t, err)
	assert.Equal(t, vxfw.FocusWidgetCmd(d.grid), cmd)

	cmd, err = d.CaptureEvent(vaxis.Key{Keycode: 'q'})
	require.NoError(t, err)
	assert.Equal(t, vxfw.QuitCmd{}, cmd)

	cmd, err = d.CaptureEvent(vaxis.Key{Keycode: 'c', Modifiers: vaxis.ModCtrl})
	require.NoError(t, err)
	assert.Equal(t, vxfw.QuitCmd{}, cmd)

	cmd, err = d.CaptureEvent(vaxis.Key{Keycode: 'j'})
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestBindFlags(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("edge", "right", "")
	flags.Float64("overlay-alpha", 0.6, "")
	flags.String("unbound", "", "")
	bindFlags(v, flags)
	require.NoError(t, flags.Parse([]string{"--edge", "top", "--overlay-alpha", "0.25"}))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, indexview.EdgeTop, cfg.Edge)
	assert.Equal(t, 0.25, cfg.Style.OverlayAlpha)
	assert.False(t, v.IsSet("unbound"))
}
