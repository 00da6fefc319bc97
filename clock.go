package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += UpdateDelta()
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

type Timer struct {
	Duration time.Duration
	Current  time.Duration
}

func (t *Timer) TickUp() {
	t.Current += UpdateDelta()
}

func (t *Timer) ClampCurrent() {
	t.Current = Clamp(t.Current, 0, t.Duration)
}

func (t *Timer) Normalize() float64 {
	return Clamp(f64(t.Current)/f64(t.Duration), 0, 1)
}

const targetFrameTime = time.Second / 60

// ticks longer than this are treated as a hiccup
// (window dragged, tab backgrounded) and clamped
const maxNormalizedDelta = 2.0

// FrameDelta measures real elapsed time between ticks and
// normalizes it against the 60fps frame interval, so animation
// speed stays the same on displays with other refresh rates.
type FrameDelta struct {
	// replaceable for tests
	Now func() time.Time

	last       time.Time
	normalized float64
}

func NewFrameDelta() *FrameDelta {
	return &FrameDelta{
		Now:        time.Now,
		normalized: 1,
	}
}

// Tick records a new frame boundary and returns the normalized delta.
func (fd *FrameDelta) Tick() float64 {
	now := fd.Now()

	if fd.last.IsZero() {
		fd.last = now
		fd.normalized = 1
		return fd.normalized
	}

	elapsed := now.Sub(fd.last)
	fd.last = now

	fd.normalized = Clamp(f64(elapsed)/f64(targetFrameTime), 0, maxNormalizedDelta)

	return fd.normalized
}

// Normalized returns the delta from the most recent Tick.
func (fd *FrameDelta) Normalized() float64 {
	return fd.normalized
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
