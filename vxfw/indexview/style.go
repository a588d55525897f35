package indexview

import (
	"git.sr.ht/~rockorager/vaxis"
	"github.com/lucasb-eyer/go-colorful"
)

// Style is the appearance of an [IndexView]. None of it changes which label a
// position resolves to
type Style struct {
	// Label is the style of each label. Its attribute mask plays the part of
	// the font
	Label vaxis.Style
	// Current is the style of the selected label while pressed
	Current vaxis.Style
	// Overlay is the color filled behind the strip while pressed
	Overlay vaxis.Color
	// OverlayAlpha is the opacity of Overlay, from 0 to 1
	OverlayAlpha float64
	// Background is the color the overlay is blended over. When it is not an
	// RGB color the overlay is blended over black
	Background vaxis.Color
}

// DefaultStyle is a bold strip with a translucent gray overlay
func DefaultStyle() Style {
	return Style{
		Label: vaxis.Style{
			Attribute: vaxis.AttrBold,
		},
		Current: vaxis.Style{
			Attribute: vaxis.AttrBold | vaxis.AttrReverse,
		},
		Overlay:      vaxis.RGBColor(0x55, 0x55, 0x55),
		OverlayAlpha: 0.6,
	}
}

// OverlayFill returns the background color to fill the strip with while
// pressed. RGB overlays are blended with the background at OverlayAlpha.
// Indexed overlays can't be blended and are used as is when at least half
// opaque. The zero Color means no fill
func (s Style) OverlayFill() vaxis.Color {
	alpha := s.OverlayAlpha
	switch {
	case !(alpha > 0):
		return 0
	case alpha > 1:
		alpha = 1
	}
	over, ok := rgb(s.Overlay)
	if !ok {
		if s.Overlay == 0 || alpha < 0.5 {
			return 0
		}
		return s.Overlay
	}
	under, ok := rgb(s.Background)
	if !ok {
		under = colorful.Color{}
	}
	r, g, b := under.BlendRgb(over, alpha).Clamped().RGB255()
	return vaxis.RGBColor(r, g, b)
}

// rgb converts an RGB vaxis.Color to a colorful.Color
func rgb(c vaxis.Color) (colorful.Color, bool) {
	p := c.Params()
	if len(p) != 3 {
		return colorful.Color{}, false
	}
	return colorful.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
	}, true
}
