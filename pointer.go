package main

// TrackerConfig tunes pointer smoothing for one input modality.
type TrackerConfig struct {
	// lag factors, in (0, 1]; bigger converges faster
	PrimaryLag float64
	ChainLag   float64

	ChainLength int

	VelocityScale float64
	VelocityDecay float64

	// how many normalized ticks a lifted touch is held
	// before the blob starts fading
	ReleaseHoldTicks float64
	FadeSpeed        float64
}

var MouseTrackerConfig = TrackerConfig{
	PrimaryLag:    0.22,
	ChainLag:      0.38,
	ChainLength:   7,
	VelocityScale: 0.12,
	VelocityDecay: 0.92,
}

var TouchTrackerConfig = TrackerConfig{
	PrimaryLag:       0.35,
	ChainLag:         0.5,
	ChainLength:      5,
	VelocityScale:    0.12,
	VelocityDecay:    0.9,
	ReleaseHoldTicks: 40,
	FadeSpeed:        0.05,
}

// PointerTracker smooths raw pointer input into a laggy primary
// position plus a follow-the-leader chain of trailing positions.
type PointerTracker struct {
	Config TrackerConfig

	Current  FPoint
	Target   FPoint
	Velocity FPoint

	// Chain[0] follows Current, Chain[i] follows Chain[i-1]
	Chain []FPoint

	Opacity float64

	resting  FPoint
	samples  CircularQueue[FPoint]
	touching bool
	holdLeft float64
	hasInput bool
}

func NewPointerTracker(config TrackerConfig, viewportW, viewportH float64) *PointerTracker {
	pt := new(PointerTracker)

	pt.Config = config
	pt.Chain = make([]FPoint, config.ChainLength)
	pt.samples = NewCircularQueue[FPoint](4)
	pt.Opacity = 1

	pt.Recenter(viewportW, viewportH)
	pt.Current = pt.resting
	pt.Target = pt.resting
	for i := range pt.Chain {
		pt.Chain[i] = pt.resting
	}

	return pt
}

// SetTarget feeds a raw pointer position.
func (pt *PointerTracker) SetTarget(x, y float64) {
	raw := FPt(x, y)

	if !pt.samples.IsEmpty() {
		prev := pt.samples.PeekLast()
		pt.Velocity = raw.Sub(prev).Scale(pt.Config.VelocityScale)
	}
	pt.samples.Enqueue(raw)

	pt.Target = raw
	pt.Opacity = 1
	pt.holdLeft = pt.Config.ReleaseHoldTicks
	pt.hasInput = true
}

// Snap teleports the whole tracker to a touch point. The first touch
// after an idle period must not fly in from the resting position.
func (pt *PointerTracker) Snap(x, y float64) {
	pos := FPt(x, y)

	pt.Target = pos
	pt.Current = pos
	for i := range pt.Chain {
		pt.Chain[i] = pos
	}

	pt.samples.Clear()
	pt.samples.Enqueue(pos)
	pt.Velocity = FPoint{}

	pt.Opacity = 1
	pt.touching = true
	pt.holdLeft = pt.Config.ReleaseHoldTicks
	pt.hasInput = true
}

// Release marks the touch as lifted. Fading starts only after the
// hold delay runs out, so a quick re-touch does not flicker.
func (pt *PointerTracker) Release() {
	pt.touching = false
	pt.holdLeft = pt.Config.ReleaseHoldTicks
}

// Recenter moves the resting target to the middle of a new viewport.
func (pt *PointerTracker) Recenter(viewportW, viewportH float64) {
	pt.resting = FPt(viewportW*0.5, viewportH*0.5)

	if !pt.hasInput {
		pt.Target = pt.resting
	}
}

// Tick advances smoothing by one frame.
func (pt *PointerTracker) Tick(deltaNormalized float64) {
	k1 := Clamp(pt.Config.PrimaryLag*deltaNormalized, 0, 1)
	k2 := Clamp(pt.Config.ChainLag*deltaNormalized, 0, 1)

	pt.Current = LerpFPt(pt.Current, pt.Target, k1)

	lead := pt.Current
	for i := range pt.Chain {
		k := k2
		if i == 0 {
			k = k1
		}
		pt.Chain[i] = LerpFPt(pt.Chain[i], lead, k)
		lead = pt.Chain[i]
	}

	pt.Velocity = pt.Velocity.Scale(pt.Config.VelocityDecay)

	if !pt.touching && pt.Config.FadeSpeed > 0 {
		if pt.holdLeft > 0 {
			pt.holdLeft -= deltaNormalized
		} else {
			pt.Opacity = Clamp(pt.Opacity-pt.Config.FadeSpeed*deltaNormalized, 0, 1)
		}
	}
}

// TrailPoints is the primary position followed by the chain,
// leader first.
func (pt *PointerTracker) TrailPoints() []FPoint {
	out := make([]FPoint, 0, len(pt.Chain)+1)
	out = append(out, pt.Current)
	out = append(out, pt.Chain...)
	return out
}
