package main

import (
	"image"
	"testing"
)

func TestGenerateNoiseImageDeterministic(t *testing.T) {
	a := GenerateNoiseImage(32, 4, 2, 7)
	b := GenerateNoiseImage(32, 4, 2, 7)

	if !a.Bounds().Eq(image.Rect(0, 0, 32, 32)) {
		t.Fatalf("bounds = %v", a.Bounds())
	}

	na := a.(*image.NRGBA)
	nb := b.(*image.NRGBA)

	for i := range na.Pix {
		if na.Pix[i] != nb.Pix[i] {
			t.Fatal("same seed must generate the same texture")
		}
	}

	c := GenerateNoiseImage(32, 4, 2, 8)
	nc := c.(*image.NRGBA)

	same := true
	for i := range na.Pix {
		if na.Pix[i] != nc.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds generated identical textures")
	}
}

func TestNoiseLoaderNames(t *testing.T) {
	load := NoiseLoader(16)

	for _, name := range BackgroundTextureNames {
		img, err := load(name)
		if err != nil {
			t.Fatalf("load %q : %v", name, err)
		}
		if img == nil {
			t.Fatalf("load %q returned nil", name)
		}
	}

	if _, err := load("bogus"); err == nil {
		t.Fatal("unknown texture name must error")
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	load := FileLoader(t.TempDir())

	if _, err := load("nope"); err == nil {
		t.Fatal("missing file must error")
	}
}
