// Package style holds the colors the hosts paint the button with.
package style

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style is the button's appearance. The animation never reads it.
type Style struct {
	Surface colorful.Color
	Hover   colorful.Color
	Pressed colorful.Color
	Border  colorful.Color
	Label   colorful.Color

	// Glow hue in degrees, drifting by HueDrift per second.
	GlowHue        float64
	GlowSaturation float64
	GlowValue      float64
	HueDrift       float64
}

func Default() Style {
	return Style{
		Surface:        colorful.Color{R: 0.078, G: 0.086, B: 0.133},
		Hover:          colorful.Color{R: 0.110, G: 0.118, B: 0.180},
		Pressed:        colorful.Color{R: 0.063, G: 0.071, B: 0.110},
		Border:         colorful.Color{R: 0.588, G: 0.667, B: 0.784},
		Label:          colorful.Color{R: 0.95, G: 0.95, B: 1},
		GlowHue:        275,
		GlowSaturation: 0.7,
		GlowValue:      1,
		HueDrift:       12,
	}
}

// Palette is the textual form of a Style as it appears in configuration.
type Palette struct {
	Surface        string
	Hover          string
	Pressed        string
	Border         string
	Label          string
	GlowHue        float64
	GlowSaturation float64
	GlowValue      float64
	HueDrift       float64
}

// Parse builds a Style from hex colors.
func Parse(s Palette) (Style, error) {
	var st Style
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"surface", s.Surface, &st.Surface},
		{"hover", s.Hover, &st.Hover},
		{"pressed", s.Pressed, &st.Pressed},
		{"border", s.Border, &st.Border},
		{"label", s.Label, &st.Label},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Style{}, fmt.Errorf("style %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = c
	}
	st.GlowHue = s.GlowHue
	st.GlowSaturation = s.GlowSaturation
	st.GlowValue = s.GlowValue
	st.HueDrift = s.HueDrift
	return st, nil
}

// SurfaceFor picks the surface color for the button's interaction state.
func (s Style) SurfaceFor(hovered, pressed bool) colorful.Color {
	switch {
	case pressed:
		return s.Pressed
	case hovered:
		return s.Hover
	default:
		return s.Surface
	}
}

// Glow returns the glow color at the given time in seconds. level in [0,1]
// brightens the glow toward white.
func (s Style) Glow(seconds, level float64) colorful.Color {
	hue := math.Mod(s.GlowHue+s.HueDrift*seconds, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsv(hue, s.GlowSaturation, s.GlowValue)
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.6*level).Clamped()
}

// RGBA converts c to an 8-bit color with the given alpha in [0,1].
func RGBA(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	a := uint8(math.Round(alpha * 255))
	// Premultiplied, as image/color expects.
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: a,
	}
}
