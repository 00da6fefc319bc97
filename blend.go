package main

type BlendPhase int

const (
	BlendIdle BlendPhase = iota
	BlendActive
)

// MixFunc produces the in-between visual of src and dst at t in [0, 1].
type MixFunc[V comparable] func(src, dst V, t float64) V

// Blend cross-fades between a source and a target visual.
// At most one transition is in flight. Retargeting mid-flight
// captures whatever is being shown at that moment as the new
// source, so the output never jumps.
type Blend[V comparable] struct {
	Source   V
	Target   V
	Progress float64

	// progress gained per normalized tick
	Speed float64

	mix   MixFunc[V]
	phase BlendPhase
}

func NewBlend[V comparable](initial V, speed float64, mix MixFunc[V]) *Blend[V] {
	return &Blend[V]{
		Source: initial,
		Target: initial,
		Speed:  speed,
		mix:    mix,
	}
}

func (b *Blend[V]) Phase() BlendPhase {
	return b.phase
}

func (b *Blend[V]) IsTransitioning() bool {
	return b.phase == BlendActive
}

// SetTarget starts or redirects a transition toward v.
// Requesting the value already shown (or already targeted) is a no-op.
func (b *Blend[V]) SetTarget(v V) {
	if b.phase == BlendIdle {
		if v == b.Source {
			return
		}
		b.Target = v
		b.Progress = 0
		b.phase = BlendActive
		return
	}

	if v == b.Target {
		return
	}

	b.Source = b.mix(b.Source, b.Target, b.Progress)
	b.Target = v
	b.Progress = 0
}

// Tick advances an active transition.
// Reports whether the transition committed on this tick.
func (b *Blend[V]) Tick(deltaNormalized float64) bool {
	if b.phase != BlendActive {
		return false
	}

	b.Progress += b.Speed * deltaNormalized

	if b.Progress >= 1 {
		b.Source = b.Target
		b.Progress = 0
		b.phase = BlendIdle
		return true
	}

	return false
}

// Value is the visual currently shown.
func (b *Blend[V]) Value() V {
	if b.phase == BlendIdle {
		return b.Source
	}
	return b.mix(b.Source, b.Target, b.Progress)
}
