package main

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// pollUntilDone drains the result channel like a tick loop would.
func pollUntilDone(t *testing.T, rs *ResourceSet) {
	t.Helper()

	deadline := time.Now().Add(time.Second * 5)
	for !rs.Done() {
		if time.Now().After(deadline) {
			t.Fatal("resource set never resolved")
		}
		rs.Poll()
		time.Sleep(time.Millisecond)
	}
}

func TestResourceLoadSuccess(t *testing.T) {
	want := SolidImage(4, 4, color.NRGBA{255, 0, 0, 255})
	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})

	rs := LoadResources([]string{"a"}, func(name string) (image.Image, error) {
		return want, nil
	}, fallback)

	pollUntilDone(t, rs)

	h := rs.Handle("a")
	if h.State() != ResourceReady {
		t.Fatalf("state = %v, want ready", h.State())
	}
	if h.Image() != want {
		t.Fatal("handle does not return the loaded image")
	}
}

func TestResourceFallbackOnFailure(t *testing.T) {
	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})

	rs := LoadResources(BackgroundTextureNames, func(name string) (image.Image, error) {
		return nil, errors.New("nope")
	}, fallback)

	pollUntilDone(t, rs)

	for _, name := range BackgroundTextureNames {
		h := rs.Handle(name)
		if h.State() != ResourceFailed {
			t.Fatalf("%v state = %v, want failed", name, h.State())
		}
		if h.Image() != fallback {
			t.Fatalf("%v must substitute the fallback", name)
		}
	}
}

func TestResourceNilImageCountsAsFailure(t *testing.T) {
	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})

	rs := LoadResources([]string{"a"}, func(name string) (image.Image, error) {
		return nil, nil
	}, fallback)

	pollUntilDone(t, rs)

	h := rs.Handle("a")
	if h.State() != ResourceFailed {
		t.Fatalf("state = %v, want failed", h.State())
	}
	if h.Image() == nil {
		t.Fatal("caller observed a nil image after resolution")
	}
}

func TestResourcePlaceholderWhileLoading(t *testing.T) {
	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})
	release := make(chan struct{})

	rs := LoadResources([]string{"a"}, func(name string) (image.Image, error) {
		<-release
		return SolidImage(4, 4, color.NRGBA{255, 255, 255, 255}), nil
	}, fallback)

	h := rs.Handle("a")

	// a tick can happen before the load resolves
	rs.Poll()
	if h.State() != ResourceLoading {
		t.Fatalf("state = %v, want still loading", h.State())
	}
	if h.Image() != fallback {
		t.Fatal("loading handle must serve the placeholder")
	}
	if rs.Done() {
		t.Fatal("set must not report done with loads pending")
	}

	close(release)
	pollUntilDone(t, rs)

	if h.State() != ResourceReady {
		t.Fatalf("state = %v, want ready", h.State())
	}
}

func TestResourceProgress(t *testing.T) {
	fallback := SolidImage(4, 4, color.NRGBA{0, 0, 0, 255})

	rs := LoadResources([]string{"a", "b"}, func(name string) (image.Image, error) {
		return fallback, nil
	}, fallback)

	pollUntilDone(t, rs)

	if rs.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", rs.Progress())
	}
	if rs.Handle("missing") != nil {
		t.Fatal("unknown handle lookup must return nil")
	}
}
