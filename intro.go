package main

import (
	_ "embed"
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed intro_shader.go
var introShaderSrc []byte

// Intro is the loading screen effect. It owns its own clock and
// shader and is disposed once the main scene takes over, so repeated
// start/stop cycles do not leak GPU handles.
type Intro struct {
	resources *ResourceSet

	time float64

	shader       *eb.Shader
	shaderBroken bool

	width, height float64

	// keeps the effect on screen briefly even when loading
	// finishes instantly, to avoid a single-frame flash
	holdTimer Timer

	disposed bool
}

func NewIntro(resources *ResourceSet, viewportW, viewportH float64) *Intro {
	in := new(Intro)

	in.resources = resources
	in.width = viewportW
	in.height = viewportH
	in.holdTimer = Timer{Duration: time.Millisecond * 600}

	return in
}

func (in *Intro) Resize(viewportW, viewportH float64) {
	if in.disposed {
		return
	}

	in.width = viewportW
	in.height = viewportH
}

func (in *Intro) Update(deltaNormalized float64) {
	if in.disposed {
		return
	}

	in.time += deltaNormalized

	in.resources.Poll()

	if in.resources.Done() {
		in.holdTimer.TickUp()
		in.holdTimer.ClampCurrent()
	}
}

// Finished reports whether every resource resolved and the hold
// period ran out.
func (in *Intro) Finished() bool {
	return in.resources.Done() && in.holdTimer.Normalize() >= 1
}

func (in *Intro) ensureShader() {
	if in.shader != nil || in.shaderBroken {
		return
	}

	shader, err := eb.NewShader(introShaderSrc)
	if err != nil {
		ErrorLogger.Printf("intro shader failed to compile : %v", err)
		in.shaderBroken = true
		return
	}

	in.shader = shader
}

func (in *Intro) Draw(dst *eb.Image) {
	if in.disposed {
		return
	}

	in.ensureShader()

	progress := in.resources.Progress()

	if in.shader != nil {
		op := &eb.DrawRectShaderOptions{}

		op.Uniforms = make(map[string]any)
		op.Uniforms["Time"] = in.time
		op.Uniforms["Progress"] = progress

		dst.DrawRectShader(int(in.width), int(in.height), in.shader, op)
	} else {
		dst.Fill(color.NRGBA{10, 8, 16, 255})
	}

	// thin progress line along the bottom
	barW := f32(in.width * progress)
	barY := f32(in.height - 4)
	ebv.DrawFilledRect(dst, 0, barY, barW, 4, color.NRGBA{255, 255, 255, 180}, false)
}

func (in *Intro) IsDisposed() bool {
	return in.disposed
}

func (in *Intro) Dispose() {
	if in.disposed {
		return
	}
	in.disposed = true

	if in.shader != nil {
		in.shader.Deallocate()
		in.shader = nil
	}
}
