package main

import (
	_ "embed"

	"github.com/charmbracelet/harmonica"
	eb "github.com/hajimehoshi/ebiten/v2"
)

//go:embed blob_shader.go
var blobShaderSrc []byte

// hard cap baked into the blob shader's uniform array
const BlobMaxPoints = 8

type BlobConfig struct {
	Radius float64

	// scale the blob springs toward while pressed
	PressScale float64

	SpringFrequency float64
	SpringDamping   float64

	Tint string
}

var DefaultBlobConfig = BlobConfig{
	Radius:          26,
	PressScale:      1.35,
	SpringFrequency: 5.5,
	SpringDamping:   0.3,
	Tint:            "#ffb347",
}

// BlobCursor renders a gooey metaball blob that chases the pointer,
// its tail made of the tracker's trailing chain.
type BlobCursor struct {
	Config BlobConfig

	Tracker *PointerTracker

	caps      Capabilities
	touchMode bool

	spring   harmonica.Spring
	scale    float64
	scaleVel float64

	shader       *eb.Shader
	shaderBroken bool

	tint [4]float64

	width, height float64

	disposed bool
}

func NewBlobCursor(config BlobConfig, caps Capabilities, viewportW, viewportH float64) *BlobCursor {
	bc := new(BlobCursor)

	bc.Config = config
	bc.caps = caps
	bc.Tracker = NewPointerTracker(MouseTrackerConfig, viewportW, viewportH)
	bc.spring = harmonica.NewSpring(harmonica.FPS(60), config.SpringFrequency, config.SpringDamping)
	bc.scale = 1
	bc.tint = ColorNormalized(ParseColor(config.Tint), true)
	bc.width = viewportW
	bc.height = viewportH

	return bc
}

func (bc *BlobCursor) Resize(viewportW, viewportH float64) {
	if bc.disposed {
		return
	}

	bc.width = viewportW
	bc.height = viewportH
	bc.Tracker.Recenter(viewportW, viewportH)
}

// Update feeds input to the tracker and advances smoothing.
func (bc *BlobCursor) Update(deltaNormalized float64) {
	if bc.disposed {
		return
	}

	if bc.caps.TouchPrimary() && !bc.touchMode {
		// retune smoothing for touch; positions carry over
		// via the snap on the first touch event
		bc.touchMode = true
		bc.Tracker = NewPointerTracker(TouchTrackerConfig, bc.width, bc.height)
	}

	pressed := false

	if bc.touchMode {
		if pos, ok := FirstTouchPosition(); ok {
			if IsAnyTouchJustPressed() {
				bc.Tracker.Snap(pos.X, pos.Y)
			} else {
				bc.Tracker.SetTarget(pos.X, pos.Y)
			}
			pressed = true
		}
		if IsAnyTouchJustReleased() && IsTouchFree() {
			bc.Tracker.Release()
		}
	} else {
		im := &TheInputManager
		if im.CursorMoved {
			bc.Tracker.SetTarget(im.Cursor.X, im.Cursor.Y)
		}
		pressed = eb.IsMouseButtonPressed(eb.MouseButtonLeft)
	}

	scaleTarget := 1.0
	if pressed {
		scaleTarget = bc.Config.PressScale
	}
	bc.scale, bc.scaleVel = bc.spring.Update(bc.scale, bc.scaleVel, scaleTarget)

	bc.Tracker.Tick(deltaNormalized)
}

func (bc *BlobCursor) ensureShader() {
	if bc.shader != nil || bc.shaderBroken {
		return
	}

	shader, err := eb.NewShader(blobShaderSrc)
	if err != nil {
		ErrorLogger.Printf("blob shader failed to compile : %v", err)
		bc.shaderBroken = true
		return
	}

	bc.shader = shader
}

// trailGeometry flattens the trail into the shader's uniform layout,
// dragging the tail against the motion vector and swelling the radii
// with speed so fast moves stretch the blob.
func (bc *BlobCursor) trailGeometry() (flat, radii []float32, count int) {
	points := bc.Tracker.TrailPoints()
	count = min(len(points), BlobMaxPoints)

	vel := bc.Tracker.Velocity
	speed := vel.Length()

	stretch := Clamp(speed*1.5, 0, 24)
	var dir FPoint
	if speed > 0 {
		dir = vel.Scale(1 / speed)
	}
	swell := 1 + Clamp(speed*0.02, 0, 0.35)

	flat = make([]float32, BlobMaxPoints*2)
	radii = make([]float32, BlobMaxPoints)

	for i := 0; i < count; i++ {
		// later links drag farther behind the motion
		p := points[i].Sub(dir.Scale(stretch * f64(i) / f64(BlobMaxPoints)))

		flat[i*2] = f32(p.X)
		flat[i*2+1] = f32(p.Y)

		// tail thins out toward the end
		shrink := 1 - f64(i)/f64(BlobMaxPoints)
		radii[i] = f32(bc.Config.Radius * bc.scale * shrink * swell)
	}

	return flat, radii, count
}

func (bc *BlobCursor) Draw(dst *eb.Image) {
	if bc.disposed {
		return
	}

	if bc.Tracker.Opacity <= 0 {
		return
	}

	bc.ensureShader()
	if bc.shader == nil {
		return
	}

	flat, radii, count := bc.trailGeometry()

	op := &eb.DrawRectShaderOptions{}

	op.Uniforms = make(map[string]any)
	op.Uniforms["Points"] = flat
	op.Uniforms["Radii"] = radii
	op.Uniforms["Count"] = f64(count)
	op.Uniforms["Tint"] = bc.tint
	op.Uniforms["Opacity"] = bc.Tracker.Opacity

	BeginBlend(eb.BlendLighter)
	op.Blend = CurrentBlend()
	dst.DrawRectShader(int(bc.width), int(bc.height), bc.shader, op)
	EndBlend()
}

func (bc *BlobCursor) IsDisposed() bool {
	return bc.disposed
}

func (bc *BlobCursor) Dispose() {
	if bc.disposed {
		return
	}
	bc.disposed = true

	if bc.shader != nil {
		bc.shader.Deallocate()
		bc.shader = nil
	}
}
