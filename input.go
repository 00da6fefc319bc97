package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Capabilities abstracts device sniffing so the smoothing and
// blending logic stays deterministic under test.
type Capabilities interface {
	// TouchPrimary reports whether touch is the active modality.
	TouchPrimary() bool
}

// ebitenCapabilities treats the device as touch-first once any
// touch has been seen.
type ebitenCapabilities struct {
	sawTouch bool
}

func (c *ebitenCapabilities) TouchPrimary() bool {
	if len(TheInputManager.TouchingBuf) > 0 {
		c.sawTouch = true
	}
	return c.sawTouch
}

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchingMap     map[eb.TouchID]bool
	JustTouchedMap  map[eb.TouchID]bool
	JustReleasedMap map[eb.TouchID]bool

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID

	Cursor      FPoint
	PrevCursor  FPoint
	CursorMoved bool
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch maps
	// =============================
	im.TouchingMap = nil
	im.JustTouchedMap = nil
	im.JustReleasedMap = nil

	if len(im.TouchingBuf) > 0 {
		im.TouchingMap = make(map[eb.TouchID]bool)
		for _, id := range im.TouchingBuf {
			im.TouchingMap[id] = true
		}
	}
	if len(im.JustTouchedBuf) > 0 {
		im.JustTouchedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustTouchedBuf {
			im.JustTouchedMap[id] = true
		}
	}
	if len(im.JustReleasedBuf) > 0 {
		im.JustReleasedMap = make(map[eb.TouchID]bool)
		for _, id := range im.JustReleasedBuf {
			im.JustReleasedMap[id] = true
		}
	}

	// =============================
	// update cursor
	// =============================
	im.PrevCursor = im.Cursor
	im.Cursor = CursorFPt()
	im.CursorMoved = !im.Cursor.Eq(im.PrevCursor)
}

// FirstTouchPosition returns the position of the oldest active touch.
func FirstTouchPosition() (FPoint, bool) {
	im := &TheInputManager

	if len(im.TouchingBuf) <= 0 {
		return FPoint{}, false
	}
	return TouchFPt(im.TouchingBuf[0]), true
}

func IsTouchFree() bool {
	im := &TheInputManager

	return len(im.TouchingBuf) <= 0
}

func IsAnyTouchJustPressed() bool {
	im := &TheInputManager

	return len(im.JustTouchedBuf) > 0
}

func IsAnyTouchJustReleased() bool {
	im := &TheInputManager

	return len(im.JustReleasedBuf) > 0
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}
