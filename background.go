package main

import (
	_ "embed"
	"fmt"
	"image"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

//go:embed background_shader.go
var backgroundShaderSrc []byte

// Card is a hover region that retargets the background palette,
// standing in for the linked sections of the page. Rect is in
// normalized [0, 1] viewport coordinates.
type Card struct {
	Name   string
	Rect   FRectangle
	Target string
}

var DefaultCards = []Card{
	{Name: "work", Rect: FRect(0.08, 0.25, 0.30, 0.75), Target: "orange"},
	{Name: "about", Rect: FRect(0.39, 0.25, 0.61, 0.75), Target: "teal"},
	{Name: "contact", Rect: FRect(0.70, 0.25, 0.92, 0.75), Target: "crimson"},
}

type BackgroundConfig struct {
	// progress gained per normalized tick; 1/45 finishes a
	// cross-fade in 45 ticks at 60tps
	TransitionSpeed float64

	// shader time advance per normalized tick
	TimeStep float64

	Intensity float64
}

var DefaultBackgroundConfig = BackgroundConfig{
	TransitionSpeed: 1.0 / 45.0,
	TimeStep:        1,
	Intensity:       1,
}

// Background runs the animated noise shader and cross-fades its
// color ramp toward whichever palette the hovered card names.
type Background struct {
	Config BackgroundConfig

	blend *Blend[Palette]

	cards       []Card
	scaledRects []FRectangle
	hovered     string

	coarse *ResourceHandle
	fine   *ResourceHandle

	coarseSrc image.Image
	fineSrc   image.Image
	coarseImg *eb.Image
	fineImg   *eb.Image

	shader       *eb.Shader
	shaderBroken bool

	time   float64
	cursor FPoint

	width, height float64

	disposed bool
}

func NewBackground(
	config BackgroundConfig,
	coarse, fine *ResourceHandle,
	cards []Card,
	viewportW, viewportH float64,
) *Background {
	bg := new(Background)

	bg.Config = config
	bg.coarse = coarse
	bg.fine = fine

	initial, ok := LookupPalette(DefaultPaletteName)
	if !ok {
		// palette table always carries the default entry
		panic("default palette is missing")
	}
	bg.blend = NewBlend(initial, config.TransitionSpeed, MixPalette)

	for _, card := range cards {
		if _, ok := LookupPalette(card.Target); !ok {
			ErrorLogger.Printf("card %q targets unknown palette %q, skipping", card.Name, card.Target)
			continue
		}
		bg.cards = append(bg.cards, card)
	}

	bg.Resize(viewportW, viewportH)

	return bg
}

// SetTarget starts a cross-fade toward the named palette.
func (bg *Background) SetTarget(name string) error {
	if bg.disposed {
		return nil
	}

	palette, ok := LookupPalette(name)
	if !ok {
		return fmt.Errorf("unknown palette %q", name)
	}

	bg.blend.SetTarget(palette)

	return nil
}

// PointCursor feeds the pointer position, resolving card hover.
// Leaving every card fades back to the default palette.
func (bg *Background) PointCursor(pos FPoint) {
	if bg.disposed {
		return
	}

	bg.cursor = pos

	target := DefaultPaletteName
	hovered := ""

	for i, card := range bg.cards {
		if pos.In(bg.scaledRects[i]) {
			target = card.Target
			hovered = card.Name
			break
		}
	}

	bg.hovered = hovered

	// card targets were validated at construction
	bg.SetTarget(target)
}

func (bg *Background) Hovered() string {
	return bg.hovered
}

func (bg *Background) IsTransitioning() bool {
	return bg.blend.IsTransitioning()
}

func (bg *Background) TransitionProgress() float64 {
	return bg.blend.Progress
}

// CurrentPalette is the palette being shown right now, mid-fade
// values included.
func (bg *Background) CurrentPalette() Palette {
	return bg.blend.Value()
}

func (bg *Background) Time() float64 {
	return bg.time
}

// Resize rescales the card hit boxes. Resolution dependent values
// are only recomputed here, never per tick.
func (bg *Background) Resize(viewportW, viewportH float64) {
	if bg.disposed {
		return
	}

	bg.width = viewportW
	bg.height = viewportH

	bg.scaledRects = bg.scaledRects[:0]
	for _, card := range bg.cards {
		bg.scaledRects = append(bg.scaledRects, FRect(
			card.Rect.Min.X*viewportW,
			card.Rect.Min.Y*viewportH,
			card.Rect.Max.X*viewportW,
			card.Rect.Max.Y*viewportH,
		))
	}
}

// Update advances the clock and any active cross-fade.
func (bg *Background) Update(deltaNormalized float64) {
	if bg.disposed {
		return
	}

	bg.time += bg.Config.TimeStep * deltaNormalized
	bg.blend.Tick(deltaNormalized)
}

// ReloadShader recompiles the shader from disk, for -hot sessions.
func (bg *Background) ReloadShader(path string) error {
	if bg.disposed {
		return nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	shader, err := eb.NewShader(src)
	if err != nil {
		return err
	}

	if bg.shader != nil {
		bg.shader.Deallocate()
	}
	bg.shader = shader
	bg.shaderBroken = false

	return nil
}

func (bg *Background) ensureShader() {
	if bg.shader != nil || bg.shaderBroken {
		return
	}

	shader, err := eb.NewShader(backgroundShaderSrc)
	if err != nil {
		// keep rendering the flat fill, no point retrying
		// an embedded source that does not compile
		ErrorLogger.Printf("background shader failed to compile : %v", err)
		bg.shaderBroken = true
		return
	}

	bg.shader = shader
}

func (bg *Background) ensureTextures() bool {
	coarseSrc := bg.coarse.Image()
	fineSrc := bg.fine.Image()

	if coarseSrc == nil || fineSrc == nil {
		return false
	}

	if coarseSrc != bg.coarseSrc {
		if bg.coarseImg != nil {
			bg.coarseImg.Deallocate()
		}
		bg.coarseImg = eb.NewImageFromImage(coarseSrc)
		bg.coarseSrc = coarseSrc
	}
	if fineSrc != bg.fineSrc {
		if bg.fineImg != nil {
			bg.fineImg.Deallocate()
		}
		bg.fineImg = eb.NewImageFromImage(fineSrc)
		bg.fineSrc = fineSrc
	}

	if !bg.coarseImg.Bounds().Eq(bg.fineImg.Bounds()) {
		ErrorLogger.Printf(
			"background textures differ in size (%v vs %v)",
			bg.coarseImg.Bounds(), bg.fineImg.Bounds(),
		)
		return false
	}

	return true
}

func (bg *Background) Draw(dst *eb.Image) {
	if bg.disposed {
		return
	}

	bg.ensureShader()

	if bg.shader == nil || !bg.ensureTextures() {
		dst.Fill(bg.blend.Value().BaseColor())
		return
	}

	op := &eb.DrawRectShaderOptions{}

	op.Images[0] = bg.coarseImg
	op.Images[1] = bg.fineImg

	op.Uniforms = make(map[string]any)
	op.Uniforms["Time"] = bg.time
	op.Uniforms["Cursor"] = [2]float64{bg.cursor.X, bg.cursor.Y}
	op.Uniforms["Intensity"] = bg.Config.Intensity
	op.Uniforms["RampA"] = bg.blend.Source.Uniform()
	op.Uniforms["RampB"] = bg.blend.Target.Uniform()
	op.Uniforms["Blend"] = bg.blend.Progress

	imgSizeX, imgSizeY := ImageSizeF(bg.coarseImg)

	op.GeoM.Scale(bg.width/imgSizeX, bg.height/imgSizeY)

	dst.DrawRectShader(bg.coarseImg.Bounds().Dx(), bg.coarseImg.Bounds().Dy(), bg.shader, op)
}

func (bg *Background) IsDisposed() bool {
	return bg.disposed
}

// Dispose releases the shader and uploaded textures.
// Safe to call more than once; later Update/Draw calls are no-ops.
func (bg *Background) Dispose() {
	if bg.disposed {
		return
	}
	bg.disposed = true

	if bg.shader != nil {
		bg.shader.Deallocate()
		bg.shader = nil
	}
	if bg.coarseImg != nil {
		bg.coarseImg.Deallocate()
		bg.coarseImg = nil
	}
	if bg.fineImg != nil {
		bg.fineImg.Deallocate()
		bg.fineImg = nil
	}
}
