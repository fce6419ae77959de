package spruce

import "math"

// TransitionRate is the exponential damping rate constant for formation
// transitions, in 1/seconds. At this rate progress covers 99% of the distance
// to its target in about three seconds of wall time regardless of frame rate.
const TransitionRate = 1.5

// settleEpsilon is the distance from target below which a transition is
// considered settled. Progress itself is never snapped; Settled is a
// read-side judgment so that Advance stays strictly idempotent at dt=0.
const settleEpsilon = 1e-3

// Advance damps progress toward the target formation over dt seconds:
//
//	newProgress = target + (progress - target)·exp(-TransitionRate·dt)
//
// The exponential form is frame-rate independent (the trajectory depends only
// on accumulated wall time, not tick count) and can neither overshoot nor
// oscillate. The result is clamped to [0, 1] against floating-point drift.
//
// An unrecognized formation value panics; see Formation.target.
func Advance(progress float64, target Formation, dt float64) float64 {
	goal := target.target()
	p := goal + (progress-goal)*math.Exp(-TransitionRate*dt)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Settled reports whether progress has effectively reached the target
// formation.
func Settled(progress float64, target Formation) bool {
	return math.Abs(progress-target.target()) < settleEpsilon
}

// Advance damps the set's shared progress toward the target formation over
// dt seconds.
func (s *ParticleSet) Advance(target Formation, dt float64) {
	s.progress = Advance(s.progress, target, dt)
}

// Settled reports whether the set has effectively reached the target
// formation.
func (s *ParticleSet) Settled(target Formation) bool {
	return Settled(s.progress, target)
}
