package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	ReloadShaderKey eb.Key = eb.KeyF5

	CopyPaletteKey  eb.Key = eb.KeyC
	PastePaletteKey eb.Key = eb.KeyV
)
