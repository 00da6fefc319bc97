package main

import (
	"image"
	"image/color"
	"testing"
)

func newTestBackground(t *testing.T, cards []Card, w, h float64) *Background {
	t.Helper()

	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})
	rs := LoadResources(BackgroundTextureNames, func(name string) (image.Image, error) {
		return fallback, nil
	}, fallback)
	pollUntilDone(t, rs)

	return NewBackground(
		DefaultBackgroundConfig,
		rs.Handle(NoiseCoarseTexture),
		rs.Handle(NoiseFineTexture),
		cards,
		w, h,
	)
}

func TestBackgroundSetTargetUnknownPalette(t *testing.T) {
	bg := newTestBackground(t, nil, 800, 600)

	if err := bg.SetTarget("no-such-palette"); err == nil {
		t.Fatal("expected an error for an unknown palette")
	}
	if bg.IsTransitioning() {
		t.Fatal("failed retarget must not start a transition")
	}
}

func TestBackgroundSkipsCardWithUnknownTarget(t *testing.T) {
	cards := []Card{
		{Name: "broken", Rect: FRect(0, 0, 0.5, 1), Target: "no-such-palette"},
		{Name: "works", Rect: FRect(0.5, 0, 1, 1), Target: "orange"},
	}

	bg := newTestBackground(t, cards, 100, 100)

	// the broken pairing is skipped, hovering it does nothing
	bg.PointCursor(FPt(25, 50))
	if bg.IsTransitioning() {
		t.Fatal("skipped card still retargets")
	}

	// the valid pairing keeps working
	bg.PointCursor(FPt(75, 50))
	if !bg.IsTransitioning() {
		t.Fatal("valid card should retarget")
	}
	if bg.Hovered() != "works" {
		t.Fatalf("hovered = %q, want %q", bg.Hovered(), "works")
	}
}

func TestBackgroundHoverRetargetAndSettle(t *testing.T) {
	bg := newTestBackground(t, DefaultCards, 1000, 1000)

	// inside the "work" card
	hover := FPt(150, 500)

	bg.PointCursor(hover)
	if !bg.IsTransitioning() {
		t.Fatal("hover should start a cross-fade")
	}

	for i := 0; i < 5; i++ {
		bg.Update(1)
	}
	progress := bg.TransitionProgress()
	if progress <= 0 {
		t.Fatal("expected progress to advance")
	}

	// hovering the same card every tick must not restart the fade
	bg.PointCursor(hover)
	if bg.TransitionProgress() != progress {
		t.Fatal("re-hover reset an in-flight transition")
	}

	// leave, then settle back to the default palette
	bg.PointCursor(FPt(5, 5))
	for i := 0; i < 1000; i++ {
		bg.Update(1)
		if !bg.IsTransitioning() {
			break
		}
	}

	want, _ := LookupPalette(DefaultPaletteName)
	if bg.CurrentPalette() != want {
		t.Fatal("background did not settle back to the default palette")
	}
}

func TestBackgroundResizeRescalesCards(t *testing.T) {
	bg := newTestBackground(t, DefaultCards, 1000, 1000)

	hover := FPt(150, 500)

	bg.PointCursor(hover)
	if bg.Hovered() == "" {
		t.Fatal("expected a hovered card before resize")
	}

	bg.Resize(100, 100)

	bg.PointCursor(hover)
	if bg.Hovered() != "" {
		t.Fatal("old hit box survived the resize")
	}

	bg.PointCursor(FPt(15, 50))
	if bg.Hovered() != "work" {
		t.Fatalf("hovered = %q, want %q after resize", bg.Hovered(), "work")
	}
}

func TestBackgroundDisposeIsIdempotentAndInert(t *testing.T) {
	bg := newTestBackground(t, DefaultCards, 800, 600)

	bg.Update(1)
	timeBefore := bg.Time()

	bg.Dispose()
	bg.Dispose() // second call must be safe

	if !bg.IsDisposed() {
		t.Fatal("not marked disposed")
	}

	// a queued tick firing after disposal must not mutate state
	bg.Update(1)
	if bg.Time() != timeBefore {
		t.Fatal("disposed background advanced its clock")
	}

	if err := bg.SetTarget("orange"); err != nil {
		t.Fatalf("SetTarget after dispose: %v", err)
	}
	if bg.IsTransitioning() {
		t.Fatal("disposed background started a transition")
	}

	bg.PointCursor(FPt(10, 10))
	bg.Resize(10, 10)
}

func TestBackgroundTimeAdvancesWithDelta(t *testing.T) {
	bg := newTestBackground(t, nil, 800, 600)

	bg.Update(1)
	bg.Update(2)

	want := DefaultBackgroundConfig.TimeStep * 3
	if bg.Time() != want {
		t.Fatalf("time = %v, want %v", bg.Time(), want)
	}
}
