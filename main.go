package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 960
	ScreenHeight float64 = 600
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool
var FlagTextureDir string

const noiseTextureSize = 256

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "reload the background shader from disk with F5")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.StringVar(&FlagTextureDir, "textures", "",
		"load background textures from this directory instead of generating them")
}

// MainScene is the page itself: shader background, hover cards,
// blob cursor.
type MainScene struct {
	Background *Background
	Blob       *BlobCursor
}

func NewMainScene(resources *ResourceSet, caps Capabilities, w, h float64) *MainScene {
	s := new(MainScene)

	s.Background = NewBackground(
		DefaultBackgroundConfig,
		resources.Handle(NoiseCoarseTexture),
		resources.Handle(NoiseFineTexture),
		DefaultCards,
		w, h,
	)
	s.Blob = NewBlobCursor(DefaultBlobConfig, caps, w, h)

	return s
}

func (s *MainScene) Update(deltaNormalized float64) {
	// ==========================
	// pointer input
	// ==========================
	if pos, ok := FirstTouchPosition(); ok {
		s.Background.PointCursor(pos)
	} else if TheInputManager.CursorMoved {
		s.Background.PointCursor(TheInputManager.Cursor)
	}

	s.Blob.Update(deltaNormalized)
	s.Background.Update(deltaNormalized)

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(CopyPaletteKey) {
		ClipboardWriteText(s.Background.CurrentPalette().CSSString())
		InfoLogger.Print("copied current palette to clipboard")
	}

	if IsKeyJustPressed(PastePaletteKey) {
		if p, err := ParsePaletteList(ClipboardReadText()); err == nil {
			ThePaletteTable[PastedPaletteName] = p
			s.Background.SetTarget(PastedPaletteName)
			InfoLogger.Print("fading to pasted palette")
		} else {
			ErrorLogger.Printf("clipboard palette rejected : %v", err)
		}
	}

	if FlagHotReload && IsKeyJustPressed(ReloadShaderKey) {
		if err := s.Background.ReloadShader("background_shader.go"); err != nil {
			ErrorLogger.Printf("shader reload failed : %v", err)
		}
	}

	DebugPrint("hover", s.Background.Hovered())
	DebugPrintf("blend", "%.2f", s.Background.TransitionProgress())
}

func (s *MainScene) Draw(dst *eb.Image) {
	s.Background.Draw(dst)
	s.Blob.Draw(dst)
}

func (s *MainScene) Resize(w, h float64) {
	s.Background.Resize(w, h)
	s.Blob.Resize(w, h)
}

func (s *MainScene) Dispose() {
	s.Background.Dispose()
	s.Blob.Dispose()
}

type App struct {
	ShowDebugConsole bool

	delta *FrameDelta
	caps  Capabilities

	resources *ResourceSet

	// intro runs until resources resolve, then Main takes over
	Intro *Intro
	Main  *MainScene
}

func NewApp(resources *ResourceSet) *App {
	a := new(App)

	a.delta = NewFrameDelta()
	a.caps = &ebitenCapabilities{}
	a.resources = resources
	a.Intro = NewIntro(resources, ScreenWidth, ScreenHeight)

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	UpdateInput()

	delta := a.delta.Tick()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Portfolio FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrintf("delta", "%.2f", delta)
	DebugPrint("uptime", GlobalTimerNow().Round(time.Second))

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	// ==========================
	// scene handoff
	// ==========================
	if a.Intro != nil {
		a.Intro.Update(delta)

		if a.Intro.Finished() {
			a.Intro.Dispose()
			a.Intro = nil

			a.Main = NewMainScene(a.resources, a.caps, ScreenWidth, ScreenHeight)
			InfoLogger.Print("intro done, entering main scene")
		}
	} else {
		a.Main.Update(delta)
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	if a.Intro != nil {
		a.Intro.Draw(dst)
	} else {
		a.Main.Draw(dst)
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := f64(outsideWidth), f64(outsideHeight)

	if w != ScreenWidth || h != ScreenHeight {
		ScreenWidth = w
		ScreenHeight = h

		if a.Intro != nil {
			a.Intro.Resize(w, h)
		}
		if a.Main != nil {
			a.Main.Resize(w, h)
		}
	}

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		DebugPutsPersist("pprof", "true")
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	loader := NoiseLoader(noiseTextureSize)
	if FlagTextureDir != "" {
		loader = FileLoader(FlagTextureDir)
	}

	fallback := SolidImage(noiseTextureSize, noiseTextureSize, color.NRGBA{110, 110, 120, 255})

	resources := LoadResources(BackgroundTextureNames, loader, fallback)

	app := NewApp(resources)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Portfolio")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
