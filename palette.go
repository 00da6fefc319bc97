package main

import (
	"fmt"
	"image/color"
	"strings"

	css "github.com/mazznoer/csscolorparser"
)

func ColorNormalized(clr color.Color, multiplyAlpha bool) [4]float64 {
	c := ColorToNRGBA(clr)
	r, g, b, a := f64(c.R)/255, f64(c.G)/255, f64(c.B)/255, f64(c.A)/255

	if multiplyAlpha {
		r *= a
		g *= a
		b *= a
	}

	return [4]float64{r, g, b, a}
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	switch c := clr.(type) {
	case color.NRGBA:
		return c
	default:
		r, g, b, a := clr.RGBA()
		if a == 0 {
			return color.NRGBA{}
		}
		return color.NRGBA{
			R: uint8((r * 0xffff / a) >> 8),
			G: uint8((g * 0xffff / a) >> 8),
			B: uint8((b * 0xffff / a) >> 8),
			A: uint8(a >> 8),
		}
	}
}

func ParseColor(str string) color.NRGBA {
	c, err := css.Parse(str)
	if err != nil {
		ErrorLogger.Printf("failed to parse color %q : %v", str, err)
		return color.NRGBA{0, 0, 0, 255}
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// number of color stops in a background ramp
const PaletteSize = 5

// Palette is a color ramp the background shader samples by noise value.
// Stored as normalized rgba so two palettes can be lerped exactly,
// which is what makes mid-transition retargeting seamless.
type Palette struct {
	Stops [PaletteSize][4]float64
}

func PaletteFromCSS(stops [PaletteSize]string) Palette {
	var p Palette
	for i, str := range stops {
		p.Stops[i] = ColorNormalized(ParseColor(str), false)
	}
	return p
}

// MixPalette lerps every stop of a toward b by t.
func MixPalette(a, b Palette, t float64) Palette {
	var out Palette
	for i := range out.Stops {
		for j := range out.Stops[i] {
			out.Stops[i][j] = Lerp(a.Stops[i][j], b.Stops[i][j], t)
		}
	}
	return out
}

// Uniform flattens the ramp for a [PaletteSize]vec4 shader uniform.
func (p Palette) Uniform() []float32 {
	out := make([]float32, 0, PaletteSize*4)
	for _, stop := range p.Stops {
		for _, v := range stop {
			out = append(out, f32(v))
		}
	}
	return out
}

// channel8 rounds a normalized channel back to its byte value;
// truncation would turn 16/255 into 15
func channel8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}

// BaseColor is the first ramp stop, used for the flat fill
// when the shader is unavailable.
func (p Palette) BaseColor() color.NRGBA {
	s := p.Stops[0]
	return color.NRGBA{
		R: channel8(s[0]),
		G: channel8(s[1]),
		B: channel8(s[2]),
		A: 255,
	}
}

// CSSString renders the ramp as a comma separated hex list.
func (p Palette) CSSString() string {
	var sb strings.Builder
	for i, stop := range p.Stops {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "#%02x%02x%02x",
			channel8(stop[0]),
			channel8(stop[1]),
			channel8(stop[2]),
		)
	}
	return sb.String()
}

// ParsePaletteList parses a comma separated list of css colors,
// the format CSSString produces.
func ParsePaletteList(str string) (Palette, error) {
	parts := strings.Split(str, ",")
	if len(parts) != PaletteSize {
		return Palette{}, fmt.Errorf("want %v colors, got %v", PaletteSize, len(parts))
	}

	var p Palette
	for i, part := range parts {
		c, err := css.Parse(strings.TrimSpace(part))
		if err != nil {
			return Palette{}, fmt.Errorf("color %v : %w", i, err)
		}
		r, g, b, a := c.RGBA255()
		p.Stops[i] = ColorNormalized(color.NRGBA{R: r, G: g, B: b, A: a}, false)
	}

	return p, nil
}

const DefaultPaletteName = "default"

// name the pasted-from-clipboard palette is registered under
const PastedPaletteName = "pasted"

// background palettes, keyed by the names hover cards refer to
var ThePaletteTable = map[string]Palette{
	"default": PaletteFromCSS([PaletteSize]string{
		"#ccccE6", "#660099", "#66ff99", "#e66699", "#ccccE6",
	}),
	"orange": PaletteFromCSS([PaletteSize]string{
		"#fff0e0", "#cc5500", "#ffaa33", "#993311", "#fff0e0",
	}),
	"teal": PaletteFromCSS([PaletteSize]string{
		"#e0fff8", "#006655", "#33ccaa", "#114433", "#e0fff8",
	}),
	"crimson": PaletteFromCSS([PaletteSize]string{
		"#ffe0e8", "#990022", "#ff3355", "#551122", "#ffe0e8",
	}),
}

func LookupPalette(name string) (Palette, bool) {
	p, ok := ThePaletteTable[name]
	return p, ok
}
