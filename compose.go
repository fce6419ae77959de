package spruce

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// tumbleAmplitude is the peak rotational drift, in radians, applied to
// particles while they float. The drift scales with (1-progress) so settled
// particles hold still.
const tumbleAmplitude = 0.3

// blinkDimFloor is the light intensity during the dim half of the blink
// cycle. The bright half pulses up to 2x base intensity, so the twinkle reads
// as irregular flashes rather than a uniform throb.
const blinkDimFloor = 0.2

var (
	xAxis = mgl64.Vec3{1, 0, 0}
	yAxis = mgl64.Vec3{0, 1, 0}
	zAxis = mgl64.Vec3{0, 0, 1}
)

// Compose writes one Instance per particle into the set's output buffer and
// returns it. Called once per rendered frame with the total elapsed time in
// seconds.
//
// For each particle the composer stacks, in order: the scatter↔tree position
// lerp at the set's shared progress, the fading float drift, the fading
// tumble, the perpetual idle spin (ornaments), the smoothed interaction scale
// (ornaments), and the blink intensity (lights). At progress 1 every fading
// term contributes exactly zero and the position equals the stored tree pose.
func (s *ParticleSet) Compose(elapsed float64) []Instance {
	cfg := &s.config
	t := s.progress
	fade := 1 - t

	floating := cfg.FloatAmplitude > 0 && t < cfg.FloatCutoff
	tumbling := t < 1

	for i := range s.instances {
		inst := &s.instances[i]

		pos := lerpVec3(s.scatter[i], s.tree[i], t)
		if floating {
			amp := cfg.FloatAmplitude * fade
			ph := elapsed*cfg.FloatFrequency + s.phase[i]
			pos[0] += math.Sin(ph) * amp
			pos[2] += math.Cos(ph) * amp
		}

		rot := s.basis[i]
		if tumbling {
			drift := tumbleAmplitude * fade
			fi := float64(i)
			rot = rot.
				Mul(mgl64.QuatRotate(drift*math.Sin(elapsed+fi), xAxis)).
				Mul(mgl64.QuatRotate(drift*math.Cos(elapsed+fi), zAxis))
		}
		if cfg.SpinRate > 0 {
			// Perpetual: the idle spin is not damped by progress and keeps
			// turning at full assembly.
			rot = mgl64.QuatRotate(cfg.SpinRate*elapsed+s.phase[i], yAxis).Mul(rot)
		}

		scale := s.baseScale[i]
		if s.interaction != nil {
			scale *= s.interaction.scale[i]
		}

		col := cfg.Color
		if cfg.BlinkRate > 0 {
			v := math.Sin(elapsed*cfg.BlinkRate + s.phase[i])
			intensity := blinkDimFloor
			if v > 0 {
				intensity = 1 + v
			}
			col = col.Scaled(intensity)
		}

		inst.Position = pos
		inst.Rotation = rot
		inst.Scale = scale
		inst.Color = col
	}

	return s.instances
}

// SetProgress forces the set's progress to p, clamped to [0, 1]. Useful for
// starting a scene fully assembled or for driving the transition externally.
func (s *ParticleSet) SetProgress(p float64) {
	s.progress = math.Max(0, math.Min(1, p))
}
