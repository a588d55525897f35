package config

import (
	"strings"
	"testing"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxindex/vxindex/log"
	"github.com/vxindex/vxindex/vxfw/indexview"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultLabels(), cfg.Labels)
	assert.Len(t, cfg.Labels, 26)
	assert.Equal(t, indexview.EdgeRight, cfg.Edge)
	assert.True(t, cfg.Inset)
	assert.Equal(t, 14, cfg.CellWidth)
	assert.Equal(t, indexview.DefaultStyle(), cfg.Style)
	assert.Equal(t, log.LevelError, cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFile)
}

func TestLoadFile(t *testing.T) {
	v := newViper()
	v.SetConfigType("toml")
	err := v.ReadConfig(strings.NewReader(`
labels = ["#", "a", "b"]
edge = "bottom"
inset = false
cell-width = 20
log-level = "debug"
log-file = "/tmp/vxindex.log"

[style]
attributes = ["italic", "dim"]
foreground = "3"
overlay-color = "#ff0000"
overlay-alpha = 1.0
background = "#101010"
`))
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"#", "a", "b"}, cfg.Labels)
	assert.Equal(t, indexview.EdgeBottom, cfg.Edge)
	assert.False(t, cfg.Inset)
	assert.Equal(t, 20, cfg.CellWidth)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/vxindex.log", cfg.LogFile)

	assert.Equal(t, vaxis.AttrItalic|vaxis.AttrDim, cfg.Style.Label.Attribute)
	assert.Equal(t, vaxis.AttrItalic|vaxis.AttrDim|vaxis.AttrReverse, cfg.Style.Current.Attribute)
	assert.Equal(t, vaxis.IndexColor(3), cfg.Style.Label.Foreground)
	assert.Equal(t, vaxis.IndexColor(3), cfg.Style.Current.Foreground)
	assert.Equal(t, vaxis.RGBColor(0xff, 0, 0), cfg.Style.Overlay)
	assert.Equal(t, 1.0, cfg.Style.OverlayAlpha)
	assert.Equal(t, vaxis.RGBColor(0x10, 0x10, 0x10), cfg.Style.Background)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{KeyEdge, "diagonal"},
		{KeyCellWidth, 0},
		{KeyAttributes, []string{"bold", "wavy"}},
		{KeyForeground, "#zz"},
		{KeyOverlay, "300"},
		{KeyBackground, "red"},
		{KeyOverlayAlpha, 1.5},
		{KeyOverlayAlpha, -0.1},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			v := newViper()
			v.Set(test.key, test.value)
			_, err := Load(v)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	v := newViper()
	v.Set(KeyLogLevel, "loud")
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyLogLevel)
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		input    string
		expected indexview.Edge
	}{
		{"", indexview.EdgeRight},
		{"right", indexview.EdgeRight},
		{"Left", indexview.EdgeLeft},
		{" bottom ", indexview.EdgeBottom},
		{"TOP", indexview.EdgeTop},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			edge, err := ParseEdge(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, edge)
		})
	}

	_, err := ParseEdge("middle")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected vaxis.Color
	}{
		{"", 0},
		{"#ff8000", vaxis.RGBColor(0xff, 0x80, 0)},
		{"#000000", vaxis.RGBColor(0, 0, 0)},
		{"0", vaxis.IndexColor(0)},
		{" 12 ", vaxis.IndexColor(12)},
		{"255", vaxis.IndexColor(255)},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			c, err := ParseColor(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, c)
		})
	}

	for _, input := range []string{"256", "-1", "#gg0000", "blue", "0x10"} {
		_, err := ParseColor(input)
		assert.ErrorIs(t, err, ErrInvalid, input)
	}
}

func TestParseAttributes(t *testing.T) {
	mask, err := ParseAttributes([]string{"bold", "Reverse", " strikethrough", "blink"})
	require.NoError(t, err)
	assert.Equal(t, vaxis.AttrBold|vaxis.AttrReverse|vaxis.AttrStrikethrough|vaxis.AttrBlink, mask)

	mask, err = ParseAttributes([]string{"none"})
	require.NoError(t, err)
	assert.Zero(t, mask)

	mask, err = ParseAttributes(nil)
	require.NoError(t, err)
	assert.Zero(t, mask)

	_, err = ParseAttributes([]string{"underline"})
	assert.ErrorIs(t, err, ErrInvalid)
}
