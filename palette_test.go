package main

import (
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	got := ParseColor("#ff8000")
	want := color.NRGBA{255, 128, 0, 255}

	if got != want {
		t.Fatalf("ParseColor = %v, want %v", got, want)
	}

	// named css colors work too
	if ParseColor("white") != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatal("named color parse failed")
	}

	// garbage degrades to opaque black instead of failing
	if ParseColor("not a color") != (color.NRGBA{0, 0, 0, 255}) {
		t.Fatal("invalid color must fall back to black")
	}
}

func TestMixPaletteEndpoints(t *testing.T) {
	a, _ := LookupPalette("default")
	b, _ := LookupPalette("orange")

	// lerp at 0 adds an exact zero, so the source comes back bit-identical
	if MixPalette(a, b, 0) != a {
		t.Fatal("mix at 0 must equal the source")
	}

	// a + (b-a)*1 can land one ulp off b, so the far endpoint is
	// only near-exact; commits swap in the target directly instead
	// of mixing at 1
	top := MixPalette(a, b, 1)
	for i := range top.Stops {
		for j := range top.Stops[i] {
			if math.Abs(top.Stops[i][j]-b.Stops[i][j]) > 1e-12 {
				t.Fatalf("stop %v[%v] = %v, want ~%v", i, j, top.Stops[i][j], b.Stops[i][j])
			}
		}
	}

	mid := MixPalette(a, b, 0.5)
	for i := range mid.Stops {
		for j := range mid.Stops[i] {
			want := (a.Stops[i][j] + b.Stops[i][j]) / 2
			if mid.Stops[i][j] != want {
				t.Fatalf("stop %v[%v] = %v, want %v", i, j, mid.Stops[i][j], want)
			}
		}
	}
}

func TestBlendCommitLandsExactlyOnTarget(t *testing.T) {
	a, _ := LookupPalette("default")
	b, _ := LookupPalette("orange")

	blend := NewBlend(a, 0.3, MixPalette)

	blend.SetTarget(b)
	for i := 0; i < 100; i++ {
		if blend.Tick(1) {
			break
		}
	}

	// the commit path assigns the target, it never mixes at 1
	if blend.Source != b {
		t.Fatal("committed palette must be bit-identical to the target")
	}
}

func TestPaletteUniformLayout(t *testing.T) {
	p, _ := LookupPalette("default")

	uniform := p.Uniform()
	if len(uniform) != PaletteSize*4 {
		t.Fatalf("uniform length = %v, want %v", len(uniform), PaletteSize*4)
	}
}

func TestPaletteCSSString(t *testing.T) {
	p := PaletteFromCSS([PaletteSize]string{"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff"})

	s := p.CSSString()

	if !strings.HasPrefix(s, "#000000, #ffffff") {
		t.Fatalf("unexpected css string %q", s)
	}
	if strings.Count(s, "#") != PaletteSize {
		t.Fatalf("expected %v stops in %q", PaletteSize, s)
	}
}

func TestParsePaletteListRoundTrip(t *testing.T) {
	p := PaletteFromCSS([PaletteSize]string{"#102030", "#ffffff", "#ff0000", "#00ff00", "#0000ff"})

	got, err := ParsePaletteList(p.CSSString())
	if err != nil {
		t.Fatalf("round trip failed : %v", err)
	}

	// hex quantized on the way out, so the values survive exactly
	if got != p {
		t.Fatalf("round trip changed the palette:\n%v\n%v", p, got)
	}
}

func TestParsePaletteListRejectsBadInput(t *testing.T) {
	if _, err := ParsePaletteList("#ffffff, #000000"); err == nil {
		t.Fatal("wrong stop count must error")
	}

	if _, err := ParsePaletteList("#ffffff, #000000, bogus, #ffffff, #000000"); err == nil {
		t.Fatal("unparsable color must error")
	}

	if _, err := ParsePaletteList(""); err == nil {
		t.Fatal("empty clipboard text must error")
	}
}

func TestPaletteTableHasDefault(t *testing.T) {
	if _, ok := LookupPalette(DefaultPaletteName); !ok {
		t.Fatal("palette table must carry the default entry")
	}

	// every stock card target resolves
	for _, card := range DefaultCards {
		if _, ok := LookupPalette(card.Target); !ok {
			t.Fatalf("card %q targets missing palette %q", card.Name, card.Target)
		}
	}
}
