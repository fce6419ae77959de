package spruce

import "math"

// ChimeFunc is a fire-and-forget audio notification. Implementations must not
// block; the interaction path never waits on audio.
type ChimeFunc func()

const (
	// HoverScale is the multiplicative scale target while an ornament is hovered.
	HoverScale = 1.4
	// PulseScale is the multiplicative scale target while a click pulse is active.
	PulseScale = 1.6
	// PulseDuration is how long a click pulse lasts, in seconds. A new
	// activation before expiry replaces the expiry (reset-extend).
	PulseDuration = 0.2
)

// interactSmoothRate is the exponential smoothing rate for the interaction
// scale factor. Much faster than TransitionRate; hover feedback converges
// within a few frames.
const interactSmoothRate = 12.0

// InteractionState holds hover/click flags for one interactive ParticleSet.
//
// The click pulse is cleared by comparing an expiry timestamp against the
// state's own clock each frame, rather than by a deferred timer. The poll
// model keeps clearing on the single frame thread and makes the behavior
// exact under simulated time in tests.
type InteractionState struct {
	hovered    []bool
	pulseUntil []float64 // clock value at which the click pulse expires
	scale      []float64 // smoothed multiplicative scale factor

	clock float64
	chime ChimeFunc
}

func newInteractionState(count int) *InteractionState {
	st := &InteractionState{
		hovered:    make([]bool, count),
		pulseUntil: make([]float64, count),
		scale:      make([]float64, count),
	}
	for i := range st.scale {
		st.scale[i] = 1
	}
	return st
}

// SetChime installs the chime callback fired on hover-enter and activate.
// A nil callback disables the side effect.
func (st *InteractionState) SetChime(fn ChimeFunc) {
	st.chime = fn
}

// HoverEnter marks particle i as hovered and fires one chime. Repeated calls
// while already hovered are no-ops: one chime per enter, not per event.
func (st *InteractionState) HoverEnter(i int) {
	if st.hovered[i] {
		return
	}
	st.hovered[i] = true
	st.playChime()
}

// HoverExit clears particle i's hovered flag. No chime.
func (st *InteractionState) HoverExit(i int) {
	st.hovered[i] = false
}

// Activate starts (or extends) particle i's click pulse and fires one chime.
// The pulse self-clears PulseDuration later with no further events required.
func (st *InteractionState) Activate(i int) {
	st.pulseUntil[i] = st.clock + PulseDuration
	st.playChime()
}

// Hovered reports whether particle i is currently hovered.
func (st *InteractionState) Hovered(i int) bool {
	return st.hovered[i]
}

// Pulsing reports whether particle i's click pulse is currently active.
func (st *InteractionState) Pulsing(i int) bool {
	return st.clock < st.pulseUntil[i]
}

// ScaleFactor returns particle i's current smoothed interaction scale.
func (st *InteractionState) ScaleFactor(i int) float64 {
	return st.scale[i]
}

// update advances the state's clock and smooths every particle's scale toward
// its target: 1.0 base, x1.4 while hovered, x1.6 while pulsing, both axes
// multiplicative and independently active.
func (st *InteractionState) update(dt float64) {
	st.clock += dt
	decay := math.Exp(-interactSmoothRate * dt)
	for i := range st.scale {
		target := 1.0
		if st.hovered[i] {
			target *= HoverScale
		}
		if st.clock < st.pulseUntil[i] {
			target *= PulseScale
		}
		st.scale[i] = target + (st.scale[i]-target)*decay
	}
}

func (st *InteractionState) playChime() {
	if st.chime != nil {
		st.chime()
	}
}
