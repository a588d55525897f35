// Package config loads the settings of the vxindex demo: the index labels,
// where the strip goes, its style, and logging.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/vxindex/vxindex/log"
	"github.com/vxindex/vxindex/vxfw/indexview"
)

// Keys of the settings, as used in the config file and as flag names
const (
	KeyLabels       = "labels"
	KeyEdge         = "edge"
	KeyInset        = "inset"
	KeyCellWidth    = "cell-width"
	KeyAttributes   = "style.attributes"
	KeyForeground   = "style.foreground"
	KeyOverlay      = "style.overlay-color"
	KeyOverlayAlpha = "style.overlay-alpha"
	KeyBackground   = "style.background"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
)

var ErrInvalid = errors.New("invalid config")

// Config is the resolved configuration
type Config struct {
	Labels    []string
	Edge      indexview.Edge
	Inset     bool
	CellWidth int
	Style     indexview.Style
	LogLevel  int
	LogFile   string
}

// DefaultLabels are the letters A to Z
func DefaultLabels() []string {
	labels := make([]string, 0, 26)
	for r := 'A'; r <= 'Z'; r += 1 {
		labels = append(labels, string(r))
	}
	return labels
}

// SetDefaults registers the default of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLabels, DefaultLabels())
	v.SetDefault(KeyEdge, "right")
	v.SetDefault(KeyInset, true)
	v.SetDefault(KeyCellWidth, 14)
	v.SetDefault(KeyAttributes, []string{"bold"})
	v.SetDefault(KeyForeground, "")
	v.SetDefault(KeyOverlay, "#555555")
	v.SetDefault(KeyOverlayAlpha, 0.6)
	v.SetDefault(KeyBackground, "")
	v.SetDefault(KeyLogLevel, "error")
	v.SetDefault(KeyLogFile, "")
}

// Load resolves the configuration held by v
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Labels:    v.GetStringSlice(KeyLabels),
		Inset:     v.GetBool(KeyInset),
		CellWidth: v.GetInt(KeyCellWidth),
		LogFile:   v.GetString(KeyLogFile),
	}

	var err error
	if cfg.Edge, err = ParseEdge(v.GetString(KeyEdge)); err != nil {
		return cfg, err
	}
	if cfg.LogLevel, err = log.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return cfg, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if cfg.CellWidth < 1 {
		return cfg, fmt.Errorf("%s must be positive, got %d: %w", KeyCellWidth, cfg.CellWidth, ErrInvalid)
	}
	if cfg.Style, err = loadStyle(v); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadStyle(v *viper.Viper) (indexview.Style, error) {
	style := indexview.DefaultStyle()

	attrs, err := ParseAttributes(v.GetStringSlice(KeyAttributes))
	if err != nil {
		return style, fmt.Errorf("%s: %w", KeyAttributes, err)
	}
	style.Label.Attribute = attrs
	style.Current.Attribute = attrs | vaxis.AttrReverse

	colors := []struct {
		key string
		dst *vaxis.Color
	}{
		{KeyForeground, &style.Label.Foreground},
		{KeyOverlay, &style.Overlay},
		{KeyBackground, &style.Background},
	}
	for _, c := range colors {
		color, err := ParseColor(v.GetString(c.key))
		if err != nil {
			return style, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = color
	}
	style.Current.Foreground = style.Label.Foreground

	alpha := v.GetFloat64(KeyOverlayAlpha)
	if alpha < 0 || alpha > 1 {
		return style, fmt.Errorf("%s must be between 0 and 1, got %g: %w", KeyOverlayAlpha, alpha, ErrInvalid)
	}
	style.OverlayAlpha = alpha
	return style, nil
}

// ParseEdge converts "right", "left", "bottom" or "top" to an Edge
func ParseEdge(s string) (indexview.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "":
		return indexview.EdgeRight, nil
	case "left":
		return indexview.EdgeLeft, nil
	case "bottom":
		return indexview.EdgeBottom, nil
	case "top":
		return indexview.EdgeTop, nil
	}
	return indexview.EdgeRight, fmt.Errorf("unknown edge %q: %w", s, ErrInvalid)
}

// ParseColor converts a color to a vaxis.Color. Hex colors ("#rrggbb") are
// RGB, decimal numbers 0-255 are indexed colors and the empty string is the
// default color
func ParseColor(s string) (vaxis.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, ErrInvalid)
		}
		r, g, b := c.RGB255()
		return vaxis.RGBColor(r, g, b), nil
	}
	idx, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, ErrInvalid)
	}
	return vaxis.IndexColor(uint8(idx)), nil
}

// ParseAttributes combines attribute names into a mask
func ParseAttributes(names []string) (vaxis.AttributeMask, error) {
	var mask vaxis.AttributeMask
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "bold":
			mask |= vaxis.AttrBold
		case "dim":
			mask |= vaxis.AttrDim
		case "italic":
			mask |= vaxis.AttrItalic
		case "blink":
			mask |= vaxis.AttrBlink
		case "reverse":
			mask |= vaxis.AttrReverse
		case "strikethrough":
			mask |= vaxis.AttrStrikethrough
		case "", "none":
		default:
			return mask, fmt.Errorf("unknown attribute %q: %w", name, ErrInvalid)
		}
	}
	return mask, nil
}
